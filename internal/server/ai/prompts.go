package ai

import (
	"fmt"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

const chatSystem = `You are PlantPal, a friendly and knowledgeable houseplant care assistant.
Answer questions about watering, light, soil, pests, propagation and general plant health.
Keep answers concise and practical. Use **bold** for key advice and "*   " bullets for lists.
If a question is not about plants, gently steer the conversation back to plant care.`

const identifyPrompt = `Identify the plant in this photo.
Return the most likely common name and how confident you are as a whole-number percentage from 0 to 100.`

const autofillPrompt = `Identify the houseplant in this photo and suggest care details for it.
Give watering and fertilizing frequencies in whole days, pick the closest sunlight and humidity
categories from the allowed values, and write a short, friendly care note of one or two sentences.`

func fertilizerPrompt(name, scientificName string) string {
	if scientificName == "" {
		return fmt.Sprintf("Give a short fertilizing tip (two or three sentences) for a %s houseplant: "+
			"fertilizer type, dilution and how often to apply it, including seasonal changes.", name)
	}
	return fmt.Sprintf("Give a short fertilizing tip (two or three sentences) for a %s (%s) houseplant: "+
		"fertilizer type, dilution and how often to apply it, including seasonal changes.", name, scientificName)
}

var identifyFields = []Field{
	{Name: "name", Type: FieldString, Description: "Common name of the plant", Required: true},
	{Name: "match", Type: FieldInteger, Description: "Confidence percentage, 0 to 100", Required: true},
}

var autofillFields = []Field{
	{Name: "name", Type: FieldString, Description: "Common name of the plant"},
	{Name: "scientificName", Type: FieldString, Description: "Botanical name", Required: true},
	{Name: "wateringFrequency", Type: FieldInteger, Description: "Days between waterings", Required: true},
	{Name: "fertilizingFrequency", Type: FieldInteger, Description: "Days between feedings", Required: true},
	{Name: "sunlight", Type: FieldString, Enum: models.SunlightOptions, Required: true},
	{Name: "humidity", Type: FieldString, Enum: models.HumidityOptions, Required: true},
	{Name: "notes", Type: FieldString, Description: "Short care note", Required: true},
}
