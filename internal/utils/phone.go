package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultCountryCode is prepended to numbers given in national format
const DefaultCountryCode = "234"

var e164Pattern = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)

// NormalizePhone converts a phone number to E.164 (+<country><number>).
// Numbers with a leading 0 are treated as national numbers in DefaultCountryCode.
func NormalizePhone(phone string) (string, error) {
	stripped := strings.NewReplacer("-", "", " ", "", "(", "", ")", "", ".", "").Replace(strings.TrimSpace(phone))

	switch {
	case strings.HasPrefix(stripped, "+"):
	case strings.HasPrefix(stripped, "00"):
		stripped = "+" + stripped[2:]
	case strings.HasPrefix(stripped, "0"):
		stripped = "+" + DefaultCountryCode + stripped[1:]
	default:
		stripped = "+" + stripped
	}

	if !e164Pattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number format")
	}
	return stripped, nil
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := regexp.MustCompile(`[^0-9]`).ReplaceAllString(phone, "")
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
