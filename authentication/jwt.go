package authentication

import (
	"errors"
	"os"
	"strings"
	"time"

	"MediCareHub/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 8 * time.Hour

// Claims carried for every authenticated caller: who they are and what
// role gates apply. Profile resolution happens in the services layer.
type Claims struct {
	UserID int    `json:"userId"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func GenerateToken(userID int, r role.Role, email string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   r.String(),
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func ParseToken(signed string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return jwtKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if _, err := role.Parse(claims.Role); err != nil {
		return nil, err
	}
	return claims, nil
}

/*
* Extract the bearer token, validate it and place the caller identity
* (userId, role, email) on the request context for the services layer.
 */
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization header is missing"})
			return
		}
		signed := strings.TrimPrefix(header, "Bearer ")
		claims, err := ParseToken(signed)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": err.Error()})
			return
		}
		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// RequireRoles gates a route group to the given roles.
func RequireRoles(allowed ...role.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, err := role.Parse(c.GetString("role"))
		if err != nil {
			c.AbortWithStatusJSON(403, gin.H{"error": "unknown caller role"})
			return
		}
		for _, r := range allowed {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(403, gin.H{"error": "insufficient role"})
	}
}
