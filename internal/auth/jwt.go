package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/projecto-dev/projecto/db"
	"github.com/projecto-dev/projecto/internal/models"
	"gorm.io/gorm"
)

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = time.Hour * 24 * 7
)

var ErrTokenBlacklisted = errors.New("token is blacklisted")

var jwtSecret string

func InitJWTSecret() error {
	jwtSecret = os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is not set")
	}
	return nil
}

// GenerateTokenPair issues an access token and a refresh token for a user.
// The refresh token carries a jti so it can be blacklisted individually.
func GenerateTokenPair(userID uint, email string) (string, string, error) {
	access, err := GenerateAccessToken(userID, email)

	if err != nil {
		return "", "", err
	}

	refresh, err := generateRefreshToken(userID)

	if err != nil {
		return "", "", err
	}

	return access, refresh, nil
}

func GenerateAccessToken(userID uint, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"type":    "access",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(AccessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func generateRefreshToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    "refresh",
		"jti":     uuid.NewString(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(RefreshTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// VerifyAccessToken validates an access token and returns the user ID it
// was issued for.
func VerifyAccessToken(tokenString string) (uint, error) {
	claims, err := parseToken(tokenString)

	if err != nil {
		return 0, err
	}

	if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
		return 0, fmt.Errorf("token is not an access token")
	}

	userIDFloat, ok := claims["user_id"].(float64)

	if !ok {
		return 0, fmt.Errorf("user_id not found in token")
	}

	return uint(userIDFloat), nil
}

// VerifyRefreshToken validates a refresh token against its claims and the
// blacklist, returning the user ID, jti and expiry.
func VerifyRefreshToken(tokenString string) (uint, string, time.Time, error) {
	claims, err := parseToken(tokenString)

	if err != nil {
		return 0, "", time.Time{}, err
	}

	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		return 0, "", time.Time{}, fmt.Errorf("token is not a refresh token")
	}

	userIDFloat, ok := claims["user_id"].(float64)

	if !ok {
		return 0, "", time.Time{}, fmt.Errorf("user_id not found in token")
	}

	jti, ok := claims["jti"].(string)

	if !ok || jti == "" {
		return 0, "", time.Time{}, fmt.Errorf("jti not found in token")
	}

	expFloat, ok := claims["exp"].(float64)

	if !ok {
		return 0, "", time.Time{}, fmt.Errorf("exp not found in token")
	}

	var revoked models.RevokedToken

	err = db.DB.Where("jti = ?", jti).First(&revoked).Error

	if err == nil {
		return 0, "", time.Time{}, ErrTokenBlacklisted
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, "", time.Time{}, err
	}

	return uint(userIDFloat), jti, time.Unix(int64(expFloat), 0), nil
}

// VerifyAnyToken validates a token of either kind. Refresh tokens are also
// checked against the blacklist.
func VerifyAnyToken(tokenString string) error {
	claims, err := parseToken(tokenString)

	if err != nil {
		return err
	}

	if jti, ok := claims["jti"].(string); ok && jti != "" {
		var revoked models.RevokedToken

		err := db.DB.Where("jti = ?", jti).First(&revoked).Error

		if err == nil {
			return ErrTokenBlacklisted
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
	}

	return nil
}

// BlacklistRefreshToken permanently invalidates a refresh token. A second
// logout with the same token fails with ErrTokenBlacklisted.
func BlacklistRefreshToken(tokenString string) error {
	userID, jti, expiresAt, err := VerifyRefreshToken(tokenString)

	if err != nil {
		return err
	}

	revoked := models.RevokedToken{
		JTI:       jti,
		UserID:    userID,
		ExpiresAt: expiresAt,
	}

	if err := db.DB.Create(&revoked).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrTokenBlacklisted
		}
		return err
	}

	return nil
}
