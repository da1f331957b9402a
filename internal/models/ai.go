package models

// ChatTurn is one message of an assistant conversation.
type ChatTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

type ChatRequest struct {
	Prompt  string     `json:"prompt"`
	History []ChatTurn `json:"history"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Identification is a species guess with a 0..100 confidence.
type Identification struct {
	Name  string `json:"name"`
	Match int    `json:"match"`
}

// CareDetails is the structured result of photo auto-fill.
type CareDetails struct {
	Name                 string `json:"name"`
	ScientificName       string `json:"scientificName"`
	WateringFrequency    int    `json:"wateringFrequency"`
	FertilizingFrequency int    `json:"fertilizingFrequency"`
	Sunlight             string `json:"sunlight"`
	Humidity             string `json:"humidity"`
	Notes                string `json:"notes"`
}

// ApplyTo merges the non-empty fields of d over draft.
func (d CareDetails) ApplyTo(draft *PlantDraft) {
	if d.Name != "" {
		draft.Name = d.Name
	}
	if d.ScientificName != "" {
		draft.ScientificName = d.ScientificName
	}
	if d.WateringFrequency > 0 {
		draft.WateringFrequency = d.WateringFrequency
	}
	if d.FertilizingFrequency > 0 {
		draft.FertilizingFrequency = d.FertilizingFrequency
	}
	if d.Sunlight != "" {
		draft.Sunlight = d.Sunlight
	}
	if d.Humidity != "" {
		draft.Humidity = d.Humidity
	}
	if d.Notes != "" {
		draft.Notes = d.Notes
	}
}

type FertilizerRequest struct {
	Name           string `json:"name"`
	ScientificName string `json:"scientificName"`
}

type FertilizerSuggestion struct {
	Suggestion string `json:"suggestion"`
}

// Credentials is the body of sign-in and sign-up requests.
type Credentials struct {
	FullName string `json:"fullname,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}
