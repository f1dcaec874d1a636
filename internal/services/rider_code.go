package services

import (
	"strings"
	"unicode"

	"campusmarket/internal/apperrors"
	"campusmarket/internal/utils"
)

const (
	riderCodeLetters = 3
	riderCodeDigits  = 4
)

// GenerateRiderCode derives a rider's short code: the first three letters of
// the name, upper-cased, followed by the last four digits of the phone.
// "Kofi Mensah", "0244123456" gives "KOF3456". Only ASCII letters count so
// codes stay URL-safe: "Émile" contributes "MIL". Names with fewer than three
// letters use what they have.
func GenerateRiderCode(name, phone string) (string, error) {
	var letters strings.Builder
	for _, r := range name {
		if letters.Len() >= riderCodeLetters {
			break
		}
		if unicode.IsLetter(r) && r < unicode.MaxASCII {
			letters.WriteRune(unicode.ToUpper(r))
		}
	}
	if letters.Len() == 0 {
		return "", apperrors.Validation("name must contain at least one letter to derive a rider code")
	}

	digits := utils.DigitsOnly(phone)
	if len(digits) < riderCodeDigits {
		return "", apperrors.Validation("phone must contain at least %d digits to derive a rider code", riderCodeDigits)
	}

	return letters.String() + digits[len(digits)-riderCodeDigits:], nil
}

// normalizeRiderCode puts a code typed or pasted by a person into stored form.
func normalizeRiderCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
