package services

import (
	"testing"

	"MediCareHub/utils"

	"github.com/stretchr/testify/assert"
)

func TestValidatePasswordRules(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		for _, pw := range []string{"Passw0rd!", "Abc123$x", "LongEnough9#"} {
			assert.NoError(t, ValidatePasswordRules(pw), pw)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		cases := map[string]string{
			"short":       "Ab1$x",
			"no upper":    "passw0rd!",
			"no number":   "Password!",
			"no special":  "Passw0rd",
			"empty":       "",
			"only digits": "12345678",
		}
		for name, pw := range cases {
			err := ValidatePasswordRules(pw)
			assert.ErrorIs(t, err, utils.ErrValidation, name)
		}
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("Passw0rd!")
	assert.NoError(t, err)
	assert.NotEqual(t, "Passw0rd!", hashed)

	assert.NoError(t, verifyPassword(hashed, "Passw0rd!"))

	err = verifyPassword(hashed, "WrongPassw0rd!")
	assert.ErrorIs(t, err, utils.ErrValidation)

	assert.Error(t, verifyPassword("", "Passw0rd!"))
	assert.Error(t, verifyPassword("   ", "Passw0rd!"))
}
