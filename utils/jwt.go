package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"

	AccessLifetime  = 60 * time.Minute
	RefreshLifetime = 24 * time.Hour
)

// JWTClaims es el payload de ambos tokens. TokenType distingue access de
// refresh; el JTI del refresh se usa para la blacklist al rotar o en logout.
type JWTClaims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

var ErrTokenInvalido = errors.New("token inválido o expirado")

func clave() ([]byte, error) {
	k := []byte(os.Getenv("JWT_SECRET"))
	if len(k) == 0 {
		return nil, errors.New("JWT_SECRET no está configurado")
	}
	return k, nil
}

func firmar(userID uint, tipo string, vida time.Duration) (string, error) {
	k, err := clave()
	if err != nil {
		return "", err
	}
	claims := JWTClaims{
		UserID:    userID,
		TokenType: tipo,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(vida)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "soundcloud-clone-api",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(k)
}

// GenerateTokenPair emite el par access (60 min) + refresh (1 día).
func GenerateTokenPair(userID uint) (*TokenPair, error) {
	access, err := firmar(userID, TokenAccess, AccessLifetime)
	if err != nil {
		return nil, err
	}
	refresh, err := firmar(userID, TokenRefresh, RefreshLifetime)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// VerifyToken valida la firma y que el token sea del tipo esperado.
func VerifyToken(tokenStr, tipoEsperado string) (*JWTClaims, error) {
	k, err := clave()
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return k, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalido
	}
	if claims.TokenType != tipoEsperado {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
