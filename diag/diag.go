// Package diag defines the structured diagnostic data model shared by the
// lexer, parser and emitters. Unlike the teacher's ors.Scanner.Mark, which
// writes formatted text straight to an io.Writer, diagnostics here are
// values: rendering them to a terminal is explicitly the caller's concern
// (spec.md §5, §6).
package diag

import "fmt"

// Kind classifies the severity of a Diagnostic.
type Kind int

const (
	Error Kind = iota
	Warning
	Note
)

func (k Kind) String() string {
	switch k {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	}
	return "unknown"
}

// Span locates a diagnostic in the source text, as a pair of byte offsets
// and the 1-based line number of the first token involved.
type Span struct {
	Start, End int
	Line       int
}

// Reason is a closed set of diagnostic causes. Each compiler-detected
// condition maps to exactly one Reason so that callers can switch on it
// without string matching.
type Reason int

const (
	ReasonUnterminatedString Reason = iota
	ReasonUnterminatedRawData
	ReasonUnexpectedEOF
	ReasonExpectedToken
	ReasonExpressionTooDeep
	ReasonInvalidFontOrdinal
	ReasonStringTypeForbidden
	ReasonUserDefinedRawDataForbidden
	ReasonInvalidAcceleratorKey
	ReasonDuplicateStringID
	ReasonTooManyControls
	ReasonEmptyMenu
	ReasonUnknownCodePage
	ReasonCodePageInIncludedFile
	ReasonFileNotFound
	ReasonUnrecognizedFileHeader
	ReasonPaletteExceedsFileBounds
	ReasonStyleMissingComma
	ReasonVersionInfoMixedValueLengths
	ReasonVersionInfoMissingCommaBeforeString
	ReasonLanguageSuffixTruncated
	ReasonUnsupportedUnaryPlus
	ReasonStringLiteralTooLong
	ReasonStrayCloseParen
	ReasonIllegalControlCharacter
	ReasonEscapedQuoteRejected
	ReasonInvalidEscape
	ReasonNestingTooDeep
)

var reasonText = map[Reason]string{
	ReasonUnterminatedString:                   "unterminated string literal",
	ReasonUnterminatedRawData:                  "unterminated raw data block",
	ReasonUnexpectedEOF:                        "unexpected end of file",
	ReasonExpectedToken:                        "expected token not found",
	ReasonExpressionTooDeep:                    "expression nested too deeply",
	ReasonInvalidFontOrdinal:                   "FONT resource requires an ordinal id",
	ReasonStringTypeForbidden:                  "resource type 6 (STRING) cannot be used as a resource type directly",
	ReasonUserDefinedRawDataForbidden:          "user-defined resource type forbids this body form",
	ReasonInvalidAcceleratorKey:                "invalid accelerator key",
	ReasonDuplicateStringID:                    "duplicate string table id",
	ReasonTooManyControls:                      "too many controls in dialog",
	ReasonEmptyMenu:                            "menu has no items",
	ReasonUnknownCodePage:                      "unknown or unsupported code page",
	ReasonCodePageInIncludedFile:               "#pragma code_page in included file is ignored",
	ReasonFileNotFound:                         "referenced file not found",
	ReasonUnrecognizedFileHeader:               "external file header not recognized",
	ReasonPaletteExceedsFileBounds:             "declared palette exceeds file bounds",
	ReasonStyleMissingComma:                    "probable reference-compiler style miscompile: control style without trailing comma",
	ReasonVersionInfoMixedValueLengths:         "VERSIONINFO value mixes strings and numbers",
	ReasonVersionInfoMissingCommaBeforeString:  "VERSIONINFO value padding miscompile: quoted string follows key without comma",
	ReasonLanguageSuffixTruncated:              "L suffix in LANGUAGE parameter truncated",
	ReasonUnsupportedUnaryPlus:                 "unary plus is not supported",
	ReasonStringLiteralTooLong:                 "string literal exceeds configured maximum length",
	ReasonStrayCloseParen:                      "stray ')' is not treated as a skip instruction",
	ReasonIllegalControlCharacter:              "illegal control character",
	ReasonEscapedQuoteRejected:                 `\" is rejected; use "" to embed a quote`,
	ReasonInvalidEscape:                        "invalid escape sequence",
	ReasonNestingTooDeep:                       "nesting limit exceeded",
}

func (r Reason) String() string {
	if s, ok := reasonText[r]; ok {
		return s
	}
	return "unknown diagnostic reason"
}

// Diagnostic is a single structured error, warning, or note.
type Diagnostic struct {
	Kind   Kind
	Reason Reason
	Span   Span
	// Detail carries reason-specific context (e.g. the offending code
	// page number, the expected token text). It has no fixed shape; the
	// renderer formats it however it likes.
	Detail string
	// Notes are diagnostics of Kind Note that accompany this one,
	// guiding the user toward the source-compatible spelling (spec.md §7).
	Notes []Diagnostic
}

func (d Diagnostic) Error() string {
	if d.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", d.Kind, d.Reason, d.Detail)
	}
	return fmt.Sprintf("%s: %s", d.Kind, d.Reason)
}

// New builds a Diagnostic with no detail and no notes.
func New(kind Kind, reason Reason, span Span) Diagnostic {
	return Diagnostic{Kind: kind, Reason: reason, Span: span}
}

// WithDetail returns a copy of d with Detail set.
func (d Diagnostic) WithDetail(detail string) Diagnostic {
	d.Detail = detail
	return d
}

// WithNote returns a copy of d with an additional Note appended.
func (d Diagnostic) WithNote(span Span, detail string) Diagnostic {
	d.Notes = append(d.Notes, Diagnostic{Kind: Note, Reason: d.Reason, Span: span, Detail: detail})
	return d
}

// List is an append-only collection of diagnostics, mirroring the
// "Diagnostics accumulate in an append-only list" requirement of spec.md §5.
type List struct {
	items []Diagnostic
}

func (l *List) Add(d Diagnostic) { l.items = append(l.items, d) }

func (l *List) All() []Diagnostic { return l.items }

// HasErrors reports whether any accumulated diagnostic is a hard error.
func (l *List) HasErrors() bool {
	for _, d := range l.items {
		if d.Kind == Error {
			return true
		}
	}
	return false
}
