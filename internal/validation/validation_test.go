package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("Wien", "city"))
	assert.EqualError(t, ValidateRequired("", "city"), "city is required")
	assert.EqualError(t, ValidateRequired("   ", "city"), "city is required")
}

func TestValidateURL(t *testing.T) {
	assert.NoError(t, ValidateURL("https://kabarett-impro.wien", "website"))
	assert.NoError(t, ValidateURL("http://localhost:3000/path?q=1", "website"))
	assert.Error(t, ValidateURL("ftp://example.com", "website"))
	assert.Error(t, ValidateURL("not a url", "website"))
	assert.Error(t, ValidateURL("", "website"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("hello@kabarett-impro.wien"))
	assert.Error(t, ValidateEmail("hello.example.com"))
}

func TestValidateLanguage(t *testing.T) {
	assert.NoError(t, ValidateLanguage("de"))
	assert.NoError(t, ValidateLanguage("en"))
	assert.Error(t, ValidateLanguage("fr"))
	assert.Error(t, ValidateLanguage(""))
}

func TestValidatePositive(t *testing.T) {
	assert.NoError(t, ValidatePositive(90, "duration_min"))
	assert.Error(t, ValidatePositive(0, "duration_min"))
	assert.Error(t, ValidatePositive(-5, "duration_min"))
}
