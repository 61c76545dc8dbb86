package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPhoneValid(t *testing.T) {
	assert.True(t, IsPhoneValid("+5511999998888"))
	assert.True(t, IsPhoneValid("999999999"))
	assert.False(t, IsPhoneValid("12345"))
	assert.False(t, IsPhoneValid("+55 11 99999-8888"))
}

func TestPasswordProblem(t *testing.T) {
	assert.Empty(t, PasswordProblem("barber2024"))
	assert.NotEmpty(t, PasswordProblem("short"))
	assert.Equal(t, "This password is entirely numeric.", PasswordProblem("12345678"))
}

func TestRegister_CustomTags(t *testing.T) {
	v := validator.New()
	Register(v)

	type req struct {
		Time  string `json:"appointment_time" validate:"hhmm"`
		Date  string `json:"appointment_date" validate:"isodate"`
		Phone string `json:"phone" validate:"omitempty,phone"`
	}

	assert.NoError(t, v.Struct(req{Time: "09:30", Date: "2026-10-20"}))
	assert.NoError(t, v.Struct(req{Time: "09:30:00", Date: "2026-10-20", Phone: "+5511999998888"}))

	err := v.Struct(req{Time: "9h", Date: "20/10/2026", Phone: "abc"})
	require.Error(t, err)

	fields, ok := FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"appointment_time": "hhmm",
		"appointment_date": "isodate",
		"phone":            "phone",
	}, fields)
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
}
