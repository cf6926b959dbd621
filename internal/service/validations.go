package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			value := entity.Category(fl.Field().String())
			for _, c := range entity.Categories {
				if c == value {
					return true
				}
			}
			return false
		})
		validate.RegisterValidation("ambient_sound", func(fl validator.FieldLevel) bool {
			value := entity.AmbientSound(fl.Field().String())
			for _, s := range entity.AmbientSounds {
				if s == value {
					return true
				}
			}
			return false
		})
	})
}

func validateStruct(v any) error {
	InitValidator()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		err = errorvalues.ErrValidation
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.Join(errorvalues.ErrValidation, errors.New("validation unexpected error: "+err.Error()))
}
