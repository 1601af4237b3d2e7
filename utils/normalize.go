package utils

import (
	"reflect"
	"strconv"
	"strings"
)

// NormalizeDTO trims string fields and rounds float64 fields on a pointer-to-struct DTO.
// Useful for request DTOs before they reach an engine or the database.
func NormalizeDTO(dto any) {
	v := reflect.ValueOf(dto)
	if v.Kind() != reflect.Ptr {
		return
	}
	s := v.Elem()
	if s.Kind() != reflect.Struct {
		return
	}
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		switch f.Kind() {
		case reflect.String:
			if f.CanSet() {
				f.SetString(strings.TrimSpace(f.String()))
			}
		case reflect.Float64:
			if f.CanSet() {
				f.SetFloat(Round2(f.Float()))
			}
		}
	}
}

// ParseAge parses free-text age input. Unparseable values and negatives
// both degrade to 0 rather than surfacing an error.
func ParseAge(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
