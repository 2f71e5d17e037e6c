package controllers

import (
	"regexp"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

var (
	mobilePattern  = regexp.MustCompile(`^[0-9]{10}$`)
	registerOnce   sync.Once
	minPasswordLen = 8
)

// RegisterValidators adds the custom binding rules used by the models.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			log.Warn().Msg("binding engine is not go-playground validator")
			return
		}
		if err := v.RegisterValidation("mobile", validateMobile); err != nil {
			log.Error().Err(err).Msg("Error registering mobile validator")
		}
		if err := v.RegisterValidation("strongpassword", validateStrongPassword); err != nil {
			log.Error().Err(err).Msg("Error registering strongpassword validator")
		}
	})
}

func validateMobile(fl validator.FieldLevel) bool {
	return mobilePattern.MatchString(fl.Field().String())
}

/*
* At least eight characters
* Needs an upper case letter, a lower case letter, a digit and a symbol
 */
func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < minPasswordLen {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			special = true
		}
	}
	return upper && lower && digit && special
}
