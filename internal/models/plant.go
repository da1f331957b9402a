// Package models holds the wire models shared by the PlantPal server and its
// clients. Field names follow the JSON API.
package models

import "time"

// Light is the coarse light category of a plant.
type Light string

const (
	LightLow    Light = "Low"
	LightMedium Light = "Medium"
	LightBright Light = "Bright"
)

// Health is the status badge of a plant.
type Health string

const (
	HealthHealthy   Health = "healthy"
	HealthAttention Health = "attention"
)

// Form defaults for a new plant.
const (
	DefaultWateringFrequency    = 7
	DefaultFertilizingFrequency = 30
	DefaultGroomingFrequency    = 60
	DefaultSunlight             = "Medium Light"
	DefaultHumidity             = "Medium Humidity"
)

// SunlightOptions and HumidityOptions are the accepted categorical values
// for the free-text sunlight and humidity fields.
var (
	SunlightOptions = []string{"Low Light", "Medium Light", "Bright Light"}
	HumidityOptions = []string{"Low Humidity", "Medium Humidity", "High Humidity"}
)

type Plant struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ScientificName string `json:"scientificName"`
	Image          string `json:"image"`
	Light          Light  `json:"light"`
	Health         Health `json:"health"`
	Location       string `json:"location"`

	WateringFrequency    int       `json:"wateringFrequency"`
	LastWatered          time.Time `json:"lastWatered"`
	FertilizingFrequency int       `json:"fertilizingFrequency"`
	LastFertilized       time.Time `json:"lastFertilized"`
	GroomingFrequency    int       `json:"groomingFrequency"`
	LastGroomed          time.Time `json:"lastGroomed"`

	Sunlight          string    `json:"sunlight"`
	Humidity          string    `json:"humidity"`
	Notes             string    `json:"notes"`
	FertilizerDetails string    `json:"fertilizerDetails,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// PlantDraft is the user-supplied part of a new plant, before the server
// assigns identity, timestamps and derived fields.
type PlantDraft struct {
	Name                 string `json:"name"`
	ScientificName       string `json:"scientificName"`
	Location             string `json:"location"`
	WateringFrequency    int    `json:"wateringFrequency"`
	FertilizingFrequency int    `json:"fertilizingFrequency"`
	GroomingFrequency    int    `json:"groomingFrequency"`
	Sunlight             string `json:"sunlight"`
	Humidity             string `json:"humidity"`
	Notes                string `json:"notes"`
	FertilizerDetails    string `json:"fertilizerDetails,omitempty"`
}

// NewPlantDraft returns a draft pre-populated with the form defaults.
func NewPlantDraft() PlantDraft {
	return PlantDraft{
		WateringFrequency:    DefaultWateringFrequency,
		FertilizingFrequency: DefaultFertilizingFrequency,
		GroomingFrequency:    DefaultGroomingFrequency,
		Sunlight:             DefaultSunlight,
		Humidity:             DefaultHumidity,
	}
}

// Photo is an uploaded image or document.
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}
