package common

// AuthorizationHeaderName carries the bearer token on every authenticated
// request.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token inside the Authorization header.
const BearerPrefix = "Bearer "

// DefaultPlantImage is used for plants created without a photo.
const DefaultPlantImage = "https://picsum.photos/id/1025/500/600"
