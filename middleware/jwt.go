package middleware

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// jwtCustomClaims is an unexported struct used for claims.
// Fields must be exported for JSON serialization.
type jwtCustomClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateJWT signs a token carrying the user's email, valid for 7 days.
func GenerateJWT(email string) (string, error) {
	claims := jwtCustomClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// parseJWT validates a raw token string and returns the email claim.
func parseJWT(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method is what we expect (HMAC)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %v", err)
	}

	if claims, ok := token.Claims.(*jwtCustomClaims); ok && token.Valid {
		return claims.Email, nil
	}
	return "", fmt.Errorf("invalid token claims")
}

// stripBearer removes the "Bearer " prefix from an Authorization value.
func stripBearer(raw string) (string, error) {
	if !strings.HasPrefix(raw, "Bearer ") {
		return "", fmt.Errorf("authorization header must use the 'Bearer ' prefix")
	}
	return strings.TrimPrefix(raw, "Bearer "), nil
}

// JWT_decoder extracts and validates the JWT from the request's
// Authorization header, returning the authenticated email.
func JWT_decoder(c *gin.Context) (string, error) {
	raw := c.GetHeader("Authorization")
	if raw == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	token, err := stripBearer(raw)
	if err != nil {
		return "", err
	}
	return parseJWT(token)
}

// Socketio_JWT_decoder extracts and validates the JWT from a socket.io
// handshake auth map, returning the authenticated email.
func Socketio_JWT_decoder(authData map[string]interface{}) (string, error) {
	raw, ok := authData["authorization"].(string)
	if !ok {
		return "", fmt.Errorf("missing authorization field in handshake auth")
	}
	token, err := stripBearer(raw)
	if err != nil {
		return "", err
	}
	return parseJWT(token)
}
