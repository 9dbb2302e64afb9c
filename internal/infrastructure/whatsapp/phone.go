package whatsapp

import "strings"

// FormatPhoneNumber normalizes a phone number to international digits without
// the "+": strip non-digits, replace a leading "0" with the country code, and
// prepend the country code when still missing.
//
//	"0812-3456-7890" -> "6281234567890"
//	"81234567890"    -> "6281234567890"
//	"6281234567890"  -> unchanged
func FormatPhoneNumber(raw, countryCode string) string {
	if countryCode == "" {
		countryCode = "62"
	}

	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}

	if strings.HasPrefix(digits, "0") {
		digits = countryCode + digits[1:]
	}
	if !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return digits
}
