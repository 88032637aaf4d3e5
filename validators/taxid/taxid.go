// Package taxid validates Brazilian tax identifiers by check digit.
package taxid

// onlyDigits strips every non-digit byte from s.
func onlyDigits(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}

// allSame reports whether every digit in s is identical (known-invalid
// sequences like 111.111.111-11 pass the checksum but are rejected).
func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// IsValidCPF validates a CPF (person id), with or without punctuation.
// Malformed input returns false, never an error.
func IsValidCPF(cpf string) bool {
	clean := onlyDigits(cpf)
	if len(clean) != 11 {
		return false
	}
	if allSame(clean) {
		return false
	}

	// First check digit
	sum := 0
	for i := 1; i <= 9; i++ {
		sum += int(clean[i-1]-'0') * (11 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	if remainder != int(clean[9]-'0') {
		return false
	}

	// Second check digit
	sum = 0
	for i := 1; i <= 10; i++ {
		sum += int(clean[i-1]-'0') * (12 - i)
	}
	remainder = (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder == int(clean[10]-'0')
}

// cnpjCheckDigit computes the check digit over the first n digits of clean,
// weights cycling 2..9 from the rightmost digit leftwards.
func cnpjCheckDigit(clean string, n int) int {
	sum := 0
	weight := 2
	for i := n - 1; i >= 0; i-- {
		sum += int(clean[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

// IsValidCNPJ validates a CNPJ (entity id), with or without punctuation.
// Malformed input returns false, never an error.
func IsValidCNPJ(cnpj string) bool {
	clean := onlyDigits(cnpj)
	if len(clean) != 14 {
		return false
	}
	if allSame(clean) {
		return false
	}

	if cnpjCheckDigit(clean, 12) != int(clean[12]-'0') {
		return false
	}
	return cnpjCheckDigit(clean, 13) == int(clean[13]-'0')
}
