package service

import (
	"errors"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("mission_id", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for _, char := range value {
				// Ids become part of endpoints, so no slashes or spaces
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' && char != '-' {
					return false
				}
			}
			return true
		})
	})
}

// describeValidation turns validator errors into a short field list.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Namespace()+" failed on "+fe.Tag())
	}
	return strings.Join(parts, "; ")
}
