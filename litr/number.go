// Package litr implements the literal evaluators of spec.md §4.2: number
// parsing with overflow wrap and long-suffix tracking, narrow/wide quoted
// string decoding, and NameOrOrdinal classification. None of it carries
// ambient state; each function is a pure reduction over a token's source
// slice plus (for strings) the active code-page pair, mirroring spec.md
// §4.4 "Evaluation is a pure reduction; no ambient state."
package litr

import "unicode/utf8"

// Number is the evaluated value of a number literal or expression: a
// 32-bit value plus the is_long flag of spec.md §3. Operators wrap modulo
// 2^32 and the result's IsLong is the disjunction of the operands' IsLong.
type Number struct {
	Value  uint32
	IsLong bool
}

// Add, Sub, Or, And wrap modulo 2^32 and OR the IsLong flags, per spec.md §4.2.
func (n Number) Add(m Number) Number {
	return Number{Value: n.Value + m.Value, IsLong: n.IsLong || m.IsLong}
}

func (n Number) Sub(m Number) Number {
	return Number{Value: n.Value - m.Value, IsLong: n.IsLong || m.IsLong}
}

func (n Number) Or(m Number) Number {
	return Number{Value: n.Value | m.Value, IsLong: n.IsLong || m.IsLong}
}

func (n Number) And(m Number) Number {
	return Number{Value: n.Value & m.Value, IsLong: n.IsLong || m.IsLong}
}

// Not returns the bitwise complement of n, used to evaluate a NotExpression
// against a sibling it is OR-ed with inside style/exstyle fields (spec.md
// §4.2). It does not change IsLong.
func (n Number) Not() Number {
	return Number{Value: ^n.Value, IsLong: n.IsLong}
}

// Negate applies a unary '-' as part of a number literal (not a binary
// operator), two's-complement wrapping per spec.md §4.2.
func (n Number) Negate() Number {
	return Number{Value: -n.Value, IsLong: n.IsLong}
}

// Complement applies a unary '~' as part of a number literal.
func (n Number) Complement() Number {
	return Number{Value: ^n.Value, IsLong: n.IsLong}
}

// Low16 is the value written to a .res payload when IsLong is false
// (spec.md §3: "a non-long number occupies 2 bytes (low 16 bits)").
func (n Number) Low16() uint16 { return uint16(n.Value) }

// ParseNumber evaluates the decoded source text of a Number token per
// spec.md §4.2/§3: decimal (with Unicode superscript 1/2/3 counting as
// digits) or 0x-prefixed hex (only the first four hex digits participate),
// with an optional trailing L/l setting IsLong, and a leading unary '-'/'~'
// folded into the literal rather than treated as an operator. A decimal
// literal with an 'e'/'E' immediately followed by a digit is rejected
// (reference compiler RC2021) and reported through ok=false.
func ParseNumber(text []byte) (n Number, ok bool) {
	runes := decodeRunes(text)
	i := 0

	negate, complement := false, false
	if i < len(runes) && runes[i] == '-' {
		negate = true
		i++
	} else if i < len(runes) && runes[i] == '~' {
		complement = true
		i++
	}
	if i >= len(runes) || !isDigit(runes[i]) {
		return Number{}, false
	}

	var value uint32
	isLong := false

	if runes[i] == '0' && i+1 < len(runes) && (runes[i+1] == 'x' || runes[i+1] == 'X') {
		i += 2
		digits := 0
		for i < len(runes) && digits < 4 && isHexDigit(runes[i]) {
			value = value*16 + uint32(hexVal(runes[i]))
			i++
			digits++
		}
		// Further hex digits beyond the first four terminate the value
		// without contributing to it (spec.md §3).
		for i < len(runes) && isHexDigit(runes[i]) {
			i++
		}
	} else {
		for i < len(runes) {
			r := runes[i]
			if isDigit(r) {
				value = value*10 + uint32(r-'0')
				i++
				continue
			}
			if d, isSuper := superscriptDigit(r); isSuper {
				value = value*10 + uint32(d)
				i++
				continue
			}
			if (r == 'e' || r == 'E') && i+1 < len(runes) && isDigit(runes[i+1]) {
				return Number{}, false
			}
			break
		}
	}

	if i < len(runes) && isLongSuffix(runes[i]) {
		isLong = true
		i++
	}

	if negate {
		value = -value
	}
	if complement {
		value = ^value
	}
	return Number{Value: value, IsLong: isLong}, true
}

func decodeRunes(text []byte) []rune {
	runes := make([]rune, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		runes = append(runes, r)
		i += size
	}
	return runes
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexVal(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}

func isLongSuffix(r rune) bool { return r == 'L' || r == 'l' }

// superscriptDigit recognizes the Unicode superscript 1/2/3 codepoints,
// which spec.md §3 requires count as the digits 1, 2, 3 in base-10 literals.
func superscriptDigit(r rune) (int, bool) {
	switch r {
	case '¹':
		return 1, true
	case '²':
		return 2, true
	case '³':
		return 3, true
	}
	return 0, false
}
