package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestValidationMessagesFieldNames(t *testing.T) {
	v := newBindingValidator()

	err := v.Struct(RegisterInput{
		Email:           "not-an-email",
		Password:        "passwd12",
		ConfirmPassword: "different",
	})
	require.Error(t, err)

	messages := ValidationMessages(err)
	assert.Equal(t, "Enter a valid email address", messages["email"])
	assert.Equal(t, "Passwords do not match", messages["confirm_password"])
}

func TestValidationMessagesRequired(t *testing.T) {
	v := newBindingValidator()

	err := v.Struct(CreateBookInput{Title: "Dune"})
	require.Error(t, err)

	messages := ValidationMessages(err)
	assert.Equal(t, "This field is required", messages["author"])
}

func TestValidationMessagesNonValidatorError(t *testing.T) {
	messages := ValidationMessages(assert.AnError)
	assert.Contains(t, messages, "detail")
}
