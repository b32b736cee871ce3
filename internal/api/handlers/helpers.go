package handlers

import (
	"errors"
	"fintrack/pkg/utils"
	"reflect"
)

// CheckBlankFields rejects a request struct with any empty string field.
func CheckBlankFields(value interface{}) error {
	val := reflect.ValueOf(value)
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if field.Kind() == reflect.String && field.String() == "" {
			return utils.ErrorHandler(errors.New("all fields are required"), "all fields are required")
		}
	}
	return nil
}
