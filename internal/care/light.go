package care

import (
	"strings"

	"github.com/dmitrijs2005/plantpal/internal/models"
)

// DeriveLight maps a free-text sunlight description to a light category
// using its first word ("Bright, indirect light" is Bright). Unrecognised
// text yields Medium.
func DeriveLight(sunlight string) models.Light {
	s := strings.TrimSpace(sunlight)
	if i := strings.IndexAny(s, " ,"); i >= 0 {
		s = s[:i]
	}
	for _, l := range []models.Light{models.LightLow, models.LightMedium, models.LightBright} {
		if strings.EqualFold(s, string(l)) {
			return l
		}
	}
	return models.LightMedium
}
