// Package cpage implements the code-page registry described in spec.md
// §3 "Code-page state" and §4.1/§4.2. It maps the numeric identifiers the
// compiler understands (1252, 65001, DEFAULT) to golang.org/x/text
// encodings and tracks, per source line, which code page is active for
// decoding source bytes (input) and which is active for re-encoding narrow
// string data (output).
//
// Grounded on seehuhn-go-pdf's use of golang.org/x/text/encoding/charmap
// for Windows-1252 and golang.org/x/text/encoding/unicode for UTF-8; the
// teacher has no analogue (Oberon source is plain ASCII) so this package's
// shape — a small dependency-light lookup table plus per-line state, styled
// after the teacher's "files" utility package — is new.
package cpage

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// DecodeToUTF8 decodes raw source bytes through enc into UTF-8 text. Both
// supported encodings are total over all 256 byte values (charmap.Windows1252
// maps undefined bytes to the replacement rune rather than failing; the
// UTF8 encoding's decoder itself replaces ill-formed sequences with
// U+FFFD), so this never errors in
// practice; the error return exists for encodings a future caller might add.
func DecodeToUTF8(enc encoding.Encoding, raw []byte) ([]byte, error) {
	dec := enc.NewDecoder()
	return dec.Bytes(raw)
}

// EncodeFromUTF8 re-encodes UTF-8 text through enc, replacing codepoints
// enc cannot represent with that encoding's own replacement character
// (spec.md §4.2: '?' under Windows-1252, U+FFFD under UTF-8).
func EncodeFromUTF8(enc encoding.Encoding, utf8Text []byte) ([]byte, error) {
	encoder := encoding.ReplaceUnsupported(enc.NewEncoder())
	return encoder.Bytes(utf8Text)
}

// Transcode decodes raw through input and re-encodes the result through
// output, implementing spec.md §4.2's narrow-string transcoding step.
func Transcode(input, output encoding.Encoding, raw []byte) []byte {
	utf8Text, err := DecodeToUTF8(input, raw)
	if err != nil {
		// Total encodings never actually hit this; fall back to the raw
		// bytes reinterpreted as UTF-8 so callers always get a result.
		utf8Text = raw
	}
	out, err := EncodeFromUTF8(output, utf8Text)
	if err != nil {
		return utf8Text
	}
	return out
}

// ID is one of the numeric code page identifiers the compiler accepts.
type ID int

const (
	Windows1252 ID = 1252
	UTF8        ID = 65001
)

// Default is the code page used when neither the command line nor a
// #pragma code_page has set one.
const Default = Windows1252

// Lookup resolves a numeric identifier to an encoding.Encoding. ok is false
// for any identifier other than Windows1252 or UTF8 (spec.md §4.1: "unknown
// pages error (or warn, in tolerant mode)").
func Lookup(id ID) (enc encoding.Encoding, ok bool) {
	switch id {
	case Windows1252:
		return charmap.Windows1252, true
	case UTF8:
		return unicode.UTF8, true
	default:
		return nil, false
	}
}

// Parse resolves the textual spelling of a #pragma code_page argument:
// "DEFAULT", a decimal number, or one of the two supported literals.
func Parse(text string) (ID, error) {
	if text == "DEFAULT" {
		return Default, nil
	}
	var n int
	if _, err := fmt.Sscanf(text, "%d", &n); err != nil {
		return 0, fmt.Errorf("cpage: %q is not a recognized code page", text)
	}
	id := ID(n)
	if _, ok := Lookup(id); !ok {
		return 0, fmt.Errorf("cpage: %d is not a supported code page", n)
	}
	return id, nil
}

// Pair is the input/output code page active for a given source line.
type Pair struct {
	Input, Output ID
}

// State tracks, per source line, the active input and output code pages,
// implementing the update rule of spec.md §3: "The first #pragma code_page
// in a file updates only input; subsequent ones update both. The
// command-line default sets both."
type State struct {
	defaultPair Pair
	// changes records the Pair that becomes active from a given
	// line number onward. A #pragma code_page takes effect for the line
	// following the directive and every line after it, until superseded.
	changes []lineChange
	sawAny  bool
}

type lineChange struct {
	fromLine int
	pair     Pair
}

// NewState creates a State whose default (command-line) code page is
// cmdLine for both input and output.
func NewState(cmdLine ID) *State {
	return &State{defaultPair: Pair{Input: cmdLine, Output: cmdLine}}
}

// SetPragma records a #pragma code_page(id) directive encountered while
// scanning fromLine (the line after the pragma line). The first pragma in
// a file updates only the input code page; every subsequent one updates
// both, matching spec.md §3.
func (s *State) SetPragma(fromLine int, id ID) {
	prev := s.activeAt(fromLine - 1)
	next := prev
	if !s.sawAny {
		next.Input = id
	} else {
		next.Input = id
		next.Output = id
	}
	s.sawAny = true
	s.changes = append(s.changes, lineChange{fromLine: fromLine, pair: next})
}

// At returns the code-page pair active for the given 1-based source line.
func (s *State) At(line int) Pair {
	return s.activeAt(line)
}

func (s *State) activeAt(line int) Pair {
	active := s.defaultPair
	for _, c := range s.changes {
		if c.fromLine <= line {
			active = c.pair
		} else {
			break
		}
	}
	return active
}
