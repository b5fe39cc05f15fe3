package service

import (
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
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// ISO-like language code: "en", "pt-br"
		validate.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) < 2 || len(value) > 6 {
				return false
			}
			seenDash := false
			for i, char := range value {
				if char == '-' {
					if seenDash || i == 0 || i == len(value)-1 {
						return false
					}
					seenDash = true
					continue
				}
				if !unicode.IsLower(char) || !unicode.IsLetter(char) {
					return false
				}
			}
			return true
		})
	})
}
