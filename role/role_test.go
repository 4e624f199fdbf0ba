package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	for _, name := range []string{"Admin", "Doctor", "Patient"} {
		r, err := Parse(name)
		assert.NoError(t, err)
		assert.Equal(t, name, r.String())
	}

	for _, bad := range []string{"", "admin", "ADMIN", "Nurse", "SuperAdmin", " Admin"} {
		_, err := Parse(bad)
		assert.ErrorIs(t, err, ErrUnknownRole, bad)
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Admin.Valid())
	assert.True(t, Doctor.Valid())
	assert.True(t, Patient.Valid())
	assert.False(t, Role("receptionist").Valid())
	assert.False(t, Role("").Valid())
}
