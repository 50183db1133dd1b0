package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-recipe/internal/token"
)

// ParseAsNumber reports whether s is a KDL number literal and, if so,
// whether it is an INT or a FLOAT. Signs, '_' separators and the 0x, 0o
// and 0b prefixes are accepted.
func ParseAsNumber(s string) (token.Type, bool) {
	if len(s) == 0 {
		return token.ILLEGAL, false
	}
	i, isFloat := 0, false

	// Optional sign.
	if s[i] == '-' || s[i] == '+' {
		if len(s) == 1 {
			return token.ILLEGAL, false
		}
		i++
	}

	if len(s)-i > 2 && s[i] == '0' {
		var digit func(byte) bool
		switch s[i+1] {
		case 'x':
			digit = isHexByte
		case 'o':
			digit = isOctalByte
		case 'b':
			digit = isBinaryByte
		}
		if digit != nil {
			end, ok := consumeDigits(s, i+2, digit)
			if !ok || end != len(s) {
				return token.ILLEGAL, false
			}
			return token.INT, true
		}
	}

	// Integer part.
	var ok bool
	i, ok = consumeDigits(s, i, isDecimalByte)
	if !ok {
		return token.ILLEGAL, false
	}

	// Fractional part.
	if i < len(s) && s[i] == '.' {
		i, ok = consumeDigits(s, i+1, isDecimalByte)
		if !ok {
			return token.ILLEGAL, false
		}
		isFloat = true
	}

	// Exponent part.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		i, ok = consumeDigits(s, i, isDecimalByte)
		if !ok {
			return token.ILLEGAL, false
		}
		isFloat = true
	}

	// Must consume the whole string.
	if i != len(s) {
		return token.ILLEGAL, false
	}

	if isFloat {
		return token.FLOAT, true
	}
	return token.INT, true
}

// consumeDigits reads a digit followed by any run of digits and '_'.
func consumeDigits(s string, i int, digit func(byte) bool) (int, bool) {
	if i >= len(s) || !digit(s[i]) {
		return i, false
	}
	i++
	for i < len(s) && (digit(s[i]) || s[i] == '_') {
		i++
	}
	return i, true
}

func isDecimalByte(b byte) bool { return '0' <= b && b <= '9' }
func isOctalByte(b byte) bool   { return '0' <= b && b <= '7' }
func isBinaryByte(b byte) bool  { return b == '0' || b == '1' }

func isHexByte(b byte) bool {
	return isDecimalByte(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// LooksNumeric reports whether s begins like a number literal. A bare
// identifier that looks numeric but is not a valid number is an error.
func LooksNumeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	s = strings.TrimPrefix(s, ".")
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

// IsBareIdentifier reports whether s can be written without quotes and
// read back as the same string.
func IsBareIdentifier(s string) bool {
	if s == "" || !utf8.ValidString(s) || LooksNumeric(s) || token.IsReserved(s) {
		return false
	}
	for _, r := range s {
		if !IsIdentifierRune(r) {
			return false
		}
	}
	return true
}
