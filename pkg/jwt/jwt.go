package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añade Role para que el middleware RBAC pueda tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"` // developer | gerencia | coordinador | asesor | cerrador | fidelizador
}

// Generate genera un token JWT firmado con sub=userID, username y role, válido por ttl.
func Generate(secret, userID, username, role, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Username: username,
		Role:     role,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GeneratePair genera el par access/refresh con el mismo payload: el access token vive
// accessTTL (minutos típicamente) y el refresh token refreshTTL (días típicamente).
func GeneratePair(secret, userID, username, role, issuer string, accessTTL, refreshTTL time.Duration) (access, refresh string, err error) {
	access, err = Generate(secret, userID, username, role, issuer, accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = Generate(secret, userID, username, role, issuer, refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Parse valida el token y devuelve userID (sub), username y role.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta.
func Parse(secret, tokenString string) (userID, username, role string, err error) {
	if secret == "" {
		return "", "", "", fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.Username, claims.Role, nil
}
