package api

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherscreen.app/pkg/validation"
)

var registerOnce sync.Once

// validateCity accepts the free-text city names the screen can submit
func validateCity(fl validator.FieldLevel) bool {
	return validation.IsValidCityName(fl.Field().String())
}

// RegisterValidators installs the custom binding tags on Gin's validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			err = v.RegisterValidation("city", validateCity)
		}
	})
	return err
}
