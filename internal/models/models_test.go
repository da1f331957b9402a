package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCareDetails_ApplyTo_KeepsDefaultsForMissingValues(t *testing.T) {
	draft := NewPlantDraft()
	draft.Location = "Kitchen"

	CareDetails{ScientificName: "Ficus lyrata", Sunlight: "Bright Light"}.ApplyTo(&draft)

	assert.Equal(t, "Ficus lyrata", draft.ScientificName)
	assert.Equal(t, "Bright Light", draft.Sunlight)
	assert.Equal(t, DefaultWateringFrequency, draft.WateringFrequency)
	assert.Equal(t, DefaultFertilizingFrequency, draft.FertilizingFrequency)
	assert.Equal(t, DefaultHumidity, draft.Humidity)
	assert.Equal(t, "Kitchen", draft.Location)
}

func TestAttachmentTypeFor(t *testing.T) {
	assert.Equal(t, AttachmentImage, AttachmentTypeFor("image/png"))
	assert.Equal(t, AttachmentDocument, AttachmentTypeFor("application/pdf"))
	assert.Equal(t, AttachmentDocument, AttachmentTypeFor(""))
}
