package authentication

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"MediCareHub/role"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateToken(42, role.Doctor, "doc@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	claims, err := ParseToken(signed)
	assert.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "Doctor", claims.Role)
	assert.Equal(t, "doc@example.com", claims.Email)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)

	_, err = ParseToken("")
	assert.Error(t, err)
}

func TestParseTokenRejectsUnknownRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateToken(1, role.Role("Nurse"), "n@example.com")
	assert.NoError(t, err)

	_, err = ParseToken(signed)
	assert.ErrorIs(t, err, role.ErrUnknownRole)
}

// A token signed under one secret must not verify under another.
func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	signed, err := GenerateToken(1, role.Admin, "a@example.com")
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseToken(signed)
	assert.Error(t, err)
}

func newAuthedContext(t *testing.T, header string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	return c, w
}

func TestJWTAuth(t *testing.T) {
	t.Run("missing header is 401", func(t *testing.T) {
		c, w := newAuthedContext(t, "")
		JWTAuth()(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("valid bearer token sets caller identity", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		signed, err := GenerateToken(7, role.Patient, "p@example.com")
		assert.NoError(t, err)

		c, w := newAuthedContext(t, "Bearer "+signed)
		JWTAuth()(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, c.GetInt("userId"))
		assert.Equal(t, "Patient", c.GetString("role"))
		assert.Equal(t, "p@example.com", c.GetString("email"))
	})
}

func TestRequireRoles(t *testing.T) {
	t.Run("allowed role passes", func(t *testing.T) {
		c, w := newAuthedContext(t, "")
		c.Set("role", "Admin")
		RequireRoles(role.Admin, role.Doctor)(c)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, c.IsAborted())
	})

	t.Run("other role is 403", func(t *testing.T) {
		c, w := newAuthedContext(t, "")
		c.Set("role", "Patient")
		RequireRoles(role.Admin)(c)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing role is 403", func(t *testing.T) {
		c, w := newAuthedContext(t, "")
		RequireRoles(role.Admin)(c)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
