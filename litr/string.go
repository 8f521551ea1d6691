package litr

import (
	"unicode/utf16"

	"golang.org/x/text/encoding"

	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
)

// segment is either a run of raw source bytes awaiting code-page
// transcoding, or an already-resolved byte produced by an escape sequence.
type segment struct {
	raw     []byte
	literal []byte
	isRaw   bool
}

// DecodeNarrowString evaluates the source text of a quoted narrow string
// token (including its surrounding quotes) per spec.md §4.2: raw source
// runs are decoded with input and re-encoded with output; escapes
// (\n \r \t \a \b \\ \" \xHH \NNN) resolve to explicit bytes that bypass
// transcoding.
func DecodeNarrowString(text []byte, input, output encoding.Encoding, diags *diag.List, span diag.Span) []byte {
	segs := scanStringBody(text, false, diags, span)
	var out []byte
	for _, s := range segs {
		if s.isRaw {
			out = append(out, cpage.Transcode(input, output, s.raw)...)
		} else {
			out = append(out, s.literal...)
		}
	}
	return out
}

// DecodeWideString evaluates the source text of a quoted wide (L"...")
// string token into UTF-16 code units per spec.md §4.2: raw source runs
// are decoded with input and encoded to UTF-16; escapes resolve to
// explicit 16-bit values.
func DecodeWideString(text []byte, input encoding.Encoding, diags *diag.List, span diag.Span) []uint16 {
	// Strip the leading 'L' before delegating to the shared body scanner.
	if len(text) > 0 && (text[0] == 'L' || text[0] == 'l') {
		text = text[1:]
	}
	segs := scanStringBody(text, true, diags, span)
	var units []uint16
	for _, s := range segs {
		if s.isRaw {
			utf8Text, err := cpage.DecodeToUTF8(input, s.raw)
			if err != nil {
				utf8Text = s.raw
			}
			units = append(units, utf16.Encode([]rune(string(utf8Text)))...)
		} else {
			units = append(units, wideLiteralUnits(s.literal)...)
		}
	}
	return units
}

// wideLiteralUnits reassembles the little-endian byte pairs decodeEscape
// produces (one pair per resolved code unit, see its unit closure) back
// into uint16 code units.
func wideLiteralUnits(b []byte) []uint16 {
	units := make([]uint16, 0, (len(b)+1)/2)
	for i := 0; i+1 < len(b); i += 2 {
		units = append(units, uint16(b[i])|uint16(b[i+1])<<8)
	}
	if len(b)%2 == 1 {
		units = append(units, uint16(b[len(b)-1]))
	}
	return units
}

// scanStringBody walks a quoted string's source text (quotes included) and
// splits it into raw-bytes-pending-transcode segments and escape-resolved
// literal segments, per spec.md §4.2's escape table.
func scanStringBody(text []byte, wide bool, diags *diag.List, span diag.Span) []segment {
	if len(text) < 2 || text[0] != '"' {
		return nil
	}
	body := text[1:]
	if len(body) > 0 && body[len(body)-1] == '"' {
		body = body[:len(body)-1]
	}

	var segs []segment
	rawStart := 0
	flushRaw := func(end int) {
		if end > rawStart {
			segs = append(segs, segment{raw: body[rawStart:end], isRaw: true})
		}
	}

	i := 0
	for i < len(body) {
		if body[i] == '"' && i+1 < len(body) && body[i+1] == '"' {
			flushRaw(i)
			segs = append(segs, segment{literal: []byte{'"'}})
			i += 2
			rawStart = i
			continue
		}
		if body[i] != '\\' {
			i++
			continue
		}
		flushRaw(i)
		lit, consumed, ok := decodeEscape(body[i:], wide, diags, span)
		if !ok {
			i++
			rawStart = i
			continue
		}
		segs = append(segs, segment{literal: lit})
		i += consumed
		rawStart = i
	}
	flushRaw(len(body))
	return segs
}

// decodeEscape resolves a single backslash escape at the start of s,
// returning the literal bytes it produces, how many source bytes were
// consumed, and whether a valid escape was recognized.
func decodeEscape(s []byte, wide bool, diags *diag.List, span diag.Span) (lit []byte, consumed int, ok bool) {
	if len(s) < 2 {
		return nil, 1, false
	}
	unit := func(n int) []byte {
		if wide {
			return []byte{byte(n), byte(n >> 8)}
		}
		return []byte{byte(n)}
	}
	switch s[1] {
	case 'n':
		return unit('\n'), 2, true
	case 'r':
		return unit('\r'), 2, true
	case 't':
		return unit('\t'), 2, true
	case 'a':
		return unit('\a'), 2, true
	case 'b':
		return unit('\b'), 2, true
	case '\\':
		return unit('\\'), 2, true
	case '"':
		diags.Add(diag.New(diag.Warning, diag.ReasonEscapedQuoteRejected, span))
		return unit('"'), 2, true
	case 'x', 'X':
		n, consumedHex := readHex(s[2:], 2)
		return unit(n), 2 + consumedHex, true
	default:
		if s[1] >= '0' && s[1] <= '7' {
			n, consumedOct := readOctal(s[1:], 3)
			return unit(n), 1 + consumedOct, true
		}
		diags.Add(diag.New(diag.Warning, diag.ReasonInvalidEscape, span))
		return unit(int(s[1])), 2, true
	}
}

func readHex(s []byte, maxDigits int) (int, int) {
	n, i := 0, 0
	for i < len(s) && i < maxDigits && isHexByte(s[i]) {
		n = n*16 + hexByteVal(s[i])
		i++
	}
	return n, i
}

func readOctal(s []byte, maxDigits int) (int, int) {
	n, i := 0, 0
	for i < len(s) && i < maxDigits && s[i] >= '0' && s[i] <= '7' {
		n = n*8 + int(s[i]-'0')
		i++
	}
	return n, i
}

func isHexByte(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func hexByteVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
