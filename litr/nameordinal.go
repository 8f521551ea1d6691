package litr

import "unicode/utf16"

// Kind tags the NameOrOrdinal tagged union (spec.md §3).
type Kind int

const (
	OrdinalKind Kind = iota
	NameKind
)

// MaxNameCodeUnits is the maximum length of a Name in UTF-16 code units
// (spec.md §3).
const MaxNameCodeUnits = 256

// NameOrOrdinal is the tagged union of spec.md §3/GLOSSARY: either a 16-bit
// Ordinal or an uppercase UTF-16 Name of at most 256 code units.
type NameOrOrdinal struct {
	Kind    Kind
	Ordinal uint16
	Name    []uint16
}

// Ordinal constructs an Ordinal NameOrOrdinal.
func Ordinal(v uint16) NameOrOrdinal { return NameOrOrdinal{Kind: OrdinalKind, Ordinal: v} }

// IsOrdinal reports whether n is the Ordinal variant.
func (n NameOrOrdinal) IsOrdinal() bool { return n.Kind == OrdinalKind }

// Classify derives a NameOrOrdinal from a source literal's raw text, per
// spec.md §3:
//
//   - If the literal begins with a digit, attempt an integer parse. Base
//     10 unless the literal starts with 0x/0X (base 16). In base 16, only
//     the first 4 hex digits participate; subsequent non-hex codepoints
//     terminate the value. In base 10, Unicode superscript 1/2/3 count as
//     1/2/3; any other non-digit codepoint aborts the parse entirely,
//     making the literal a Name. Overflow wraps modulo 2^16.
//   - If the integer result is exactly 0, the literal is a Name (the exact
//     ASCII source text, uppercased).
//   - Otherwise it is Ordinal(result).
//   - Names are uppercased ASCII with non-ASCII codepoints preserved as
//     UTF-16; invalid decoded codepoints are replaced with U+FFFD; the
//     result is trimmed to 256 UTF-16 code units, which may leave an
//     unpaired high surrogate (intentional).
func Classify(text []byte) NameOrOrdinal {
	runes := decodeRunes(text)
	if len(runes) > 0 && isDigit(runes[0]) {
		if v, ok := parseOrdinalValue(runes); ok {
			if v != 0 {
				return Ordinal(v)
			}
		}
	}
	return nameFromRunes(runes)
}

// parseOrdinalValue implements the digit-led integer parse described
// above. ok is false if a base-10 parse was aborted by a non-digit,
// non-superscript, non-hex-prefix codepoint, in which case the literal
// falls through to the Name path with its full original text.
func parseOrdinalValue(runes []rune) (uint16, bool) {
	i := 0
	var value uint32

	if runes[0] == '0' && len(runes) > 1 && (runes[1] == 'x' || runes[1] == 'X') {
		i = 2
		digits := 0
		for i < len(runes) && digits < 4 && isHexDigit(runes[i]) {
			value = value*16 + uint32(hexVal(runes[i]))
			i++
			digits++
		}
		// Subsequent non-hex codepoints simply terminate the value; this
		// is always "ok" because base 16 never aborts.
		return uint16(value), true
	}

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
		// Any other non-digit codepoint aborts the base-10 parse.
		return 0, false
	}
	return uint16(value), true
}

// nameFromRunes builds the Name variant from the full decoded literal:
// uppercase ASCII letters, preserve everything else, encode to UTF-16,
// trim to 256 code units.
func nameFromRunes(runes []rune) NameOrOrdinal {
	// decodeRunes already maps invalid byte sequences to utf8.RuneError,
	// which is U+FFFD, satisfying spec.md §3's replacement rule with no
	// further handling needed here.
	upper := make([]rune, len(runes))
	for i, r := range runes {
		if r >= 'a' && r <= 'z' {
			upper[i] = r - ('a' - 'A')
			continue
		}
		upper[i] = r
	}
	units := utf16.Encode(upper)
	if len(units) > MaxNameCodeUnits {
		units = units[:MaxNameCodeUnits]
	}
	return NameOrOrdinal{Kind: NameKind, Name: units}
}
