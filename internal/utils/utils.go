package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/legitflash/boomquotes-backend/internal/config"
)

// DateLayout is the calendar-day key format used throughout the check-in
// subsystem. All date keys are computed in UTC.
const DateLayout = "2006-01-02"

// DateKey formats t as a UTC YYYY-MM-DD day key.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// PreviousDay returns the day key immediately before date. An unparseable
// date returns an empty string.
func PreviousDay(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DateLayout)
}

// GenerateJWT generates a signed HS256 token for the given user
func GenerateJWT(userID, email string, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(time.Second * time.Duration(cfg.JWT.ExpiresIn)).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ValidateJWT validates a token and returns its claims
func ValidateJWT(tokenString string, cfg *config.Config) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// GenerateRandomString generates a URL-safe random string of the specified length
func GenerateRandomString(length int) (string, error) {
	b := make([]byte, length)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b)[:length], nil
}

// callingCodes maps international calling prefixes to ISO country codes for
// the markets the app ships in. Longest prefix wins.
var callingCodes = map[string]string{
	"+234": "NG",
	"+233": "GH",
	"+254": "KE",
	"+256": "UG",
	"+255": "TZ",
	"+27":  "ZA",
	"+44":  "GB",
	"+91":  "IN",
	"+1":   "US",
}

// ValidatePhone checks that phone looks like an international number:
// a leading + followed by 7 to 15 digits.
func ValidatePhone(phone string) bool {
	if !strings.HasPrefix(phone, "+") {
		return false
	}
	digits := phone[1:]
	if len(digits) < 7 || len(digits) > 15 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// CountryFromPhone derives the ISO country code from the phone prefix.
// Unknown prefixes return an empty string.
func CountryFromPhone(phone string) string {
	for l := 4; l >= 2; l-- {
		if len(phone) >= l {
			if iso, ok := callingCodes[phone[:l]]; ok {
				return iso
			}
		}
	}
	return ""
}
