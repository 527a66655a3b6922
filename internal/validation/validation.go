package validation

import (
	"errors"
	"net/url"
	"strconv"
	"strings"
)

// ValidateRequired valida que un campo no esté vacío
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ValidateURL valida que un string sea una URL http(s) absoluta
func ValidateURL(value, fieldName string) error {
	u, err := url.ParseRequestURI(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New(fieldName + " must be a valid http(s) URL")
	}
	return nil
}

// ValidateEmail valida formato básico de email
func ValidateEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errors.New("email must have a valid format")
	}
	return nil
}

// ValidateLanguage valida el código de idioma de una función
func ValidateLanguage(code string) error {
	switch code {
	case "de", "en":
		return nil
	default:
		return errors.New("language must be one of: de, en")
	}
}

// ValidatePositive valida que un número sea mayor que cero
func ValidatePositive(value int, fieldName string) error {
	if value <= 0 {
		return errors.New(fieldName + " must be positive, got " + strconv.Itoa(value))
	}
	return nil
}
