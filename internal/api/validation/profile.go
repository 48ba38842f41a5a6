package validation

import (
	"github.com/go-playground/validator/v10"

	"compass-utils/pkg/models"
)

// ValidateExperienceLevel restricts a profile's experience level to the known
// set of values.
func ValidateExperienceLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	for _, known := range models.ExperienceLevels {
		if level == known {
			return true
		}
	}
	return false
}

// RegisterProfileValidators registers all profile-related custom validators
func RegisterProfileValidators(v *validator.Validate) {
	v.RegisterValidation("experience_level", ValidateExperienceLevel)
}
