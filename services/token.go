package services

import (
	"os"
	"time"

	"stayverse/errors"

	"github.com/dgrijalva/jwt-go"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "stayverse-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken issues a signed token carrying the user id and role.
func GenerateToken(userID uint, role int) (string, error) {
	claims := jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid": userID,
			"role":   role,
		},
		"exp": time.Now().Add(72 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeInternalServer, "Could not sign token", err)
	}
	return signed, nil
}

// GetUserIDFromToken verifies the token signature and extracts the
// user id and role from the claims.
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claimsMap := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claimsMap, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.ErrUnauthorized
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Invalid token", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "User info missing from token", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	if !okID {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "User id missing from token", nil)
	}

	role, okRole := userInfo["role"].(float64)
	if !okRole {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Role missing from token", nil)
	}

	return uint(userID), int(role), nil
}

// GetIDFromToken verifies the token and returns only the user id.
func GetIDFromToken(tokenString string) (uint, error) {
	userID, _, err := GetUserIDFromToken(tokenString)
	return userID, err
}
