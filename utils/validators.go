package utils

import (
	"regexp"

	"backoffice/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// Reminder times are exact "HH:MM" strings, 24h clock.
var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// One-time reminder dates are "DD/MM/YYYY" strings.
var datePattern = regexp.MustCompile(`^[0-3][0-9]/[01][0-9]/[0-9]{4}$`)

func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("hhmm", ValidateClockRule)
	v.RegisterValidation("ddmmyyyy", ValidateDateRule)
	v.RegisterValidation("weekday", ValidateWeekdayRule)
}

func ValidateClockRule(fl validator.FieldLevel) bool {
	return ValidateClock(fl.Field().String())
}

func ValidateClock(value string) bool {
	return clockPattern.MatchString(value)
}

func ValidateDateRule(fl validator.FieldLevel) bool {
	return datePattern.MatchString(fl.Field().String())
}

func ValidateWeekdayRule(fl validator.FieldLevel) bool {
	return model.ValidWeekdayName(fl.Field().String())
}
