package utils

import "strings"

// FormatPhoneNumber renders free-text phone input as "(NNN) NNN-NNNN",
// formatting progressively while the number is still partial
// ("5551" => "(555) 1"). Input is stripped to digits and capped at ten.
func FormatPhoneNumber(value string) string {
	digits := stripNonDigits(value)
	if len(digits) > 10 {
		digits = digits[:10]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		switch i {
		case 0:
			b.WriteByte('(')
		case 3:
			b.WriteString(") ")
		case 6:
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// IsValidPhone reports whether the value contains exactly ten digits once
// all formatting characters are stripped.
func IsValidPhone(value string) bool {
	return len(stripNonDigits(value)) == 10
}

func stripNonDigits(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
