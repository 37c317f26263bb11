package util

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qr-attendance/models"
)

func TestParseNumericID(t *testing.T) {
	id, err := ParseNumericID(" 20001 ")
	require.NoError(t, err)
	assert.Equal(t, int64(20001), id)

	for _, raw := range []string{"", "abc", "0", "-5", "12.5"} {
		_, err := ParseNumericID(raw)
		assert.Error(t, err, raw)
	}
}

func TestGenerateBase64Key(t *testing.T) {
	key, err := GenerateBase64Key(32)
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(key)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	_, err = GenerateBase64Key(0)
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	valid := models.StaffRegisterPayload{
		FirstName:  "Op",
		LastName:   "One",
		Department: "Front desk",
		Role:       "operator",
		Username:   "op1",
		Password:   "secret1",
	}
	assert.Nil(t, ValidateStruct(valid))

	for _, role := range []string{"Admin", "HR", " operator "} {
		mixed := valid
		mixed.Role = role
		assert.Nil(t, ValidateStruct(mixed), role)
	}

	invalid := valid
	invalid.Role = "root"
	invalid.Username = ""
	errs := ValidateStruct(invalid)
	require.Len(t, errs, 2)

	tags := map[string]string{}
	for _, e := range errs {
		tags[e.Field] = e.Tag
	}
	assert.Equal(t, "role", tags["Role"])
	assert.Equal(t, "required", tags["Username"])

	errs = ValidateStruct(models.MarkAttendancePayload{UserID: 0})
	require.Len(t, errs, 1)
	assert.Equal(t, "UserID", errs[0].Field)
}
