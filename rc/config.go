// Package rc is the top-level orchestration package of the resource
// compiler: it wires the code-page registry, lexer/parser, and emitter
// into a single Compile/CompileFile entry point, the direct analogue of
// the teacher's orp package tying ors/orp/org together behind
// orp.CompileFile.
package rc

import (
	"log/slog"

	"github.com/fzipp/rcc/cpage"
)

// Config holds the compiler's tunable parameters, mirroring the
// constructor-parameter shape of the teacher's Parser/Generator rather
// than a flag/env configuration framework.
type Config struct {
	// DefaultLanguageID is the language id baked into a resource's header
	// when neither a LANGUAGE statement nor the resource's own attributes
	// supply one (spec.md §8). 0x0409 (U.S. English) if zero.
	DefaultLanguageID uint16

	// DefaultCodePage is the code page active before any #pragma
	// code_page or command-line override (spec.md §3/§4.1). cpage.Default
	// if zero.
	DefaultCodePage cpage.ID

	// MaxStringLiteralCodeUnits bounds how many UTF-16 code units a single
	// string literal may decode to before ReasonStringLiteralTooLong
	// fires (spec.md §4.5). 4097 if zero.
	MaxStringLiteralCodeUnits int

	// NullTerminateStringTableStrings controls whether each STRINGTABLE
	// entry's text carries a trailing NUL code unit in its length-prefixed
	// encoding (SPEC_FULL.md ambient behavior; off by default, matching
	// the reference format's length-prefixed-without-NUL convention).
	NullTerminateStringTableStrings bool

	// WarnInsteadOfErrorOnInvalidCodePage downgrades an unrecognized
	// #pragma code_page or -c argument from a hard error to a warning
	// that falls back to DefaultCodePage (spec.md §4.1 "(or warn, in
	// tolerant mode)").
	WarnInsteadOfErrorOnInvalidCodePage bool

	// IncludeDirectories is the ordered list of directories searched for
	// an external resource file after the source file's own directory
	// (spec.md §4.6).
	IncludeDirectories []string

	// Logger receives pipeline tracing (stage entry/exit, files opened,
	// code-page switches). slog.Default() if nil.
	Logger *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.DefaultLanguageID == 0 {
		c.DefaultLanguageID = 0x0409
	}
	if c.DefaultCodePage == 0 {
		c.DefaultCodePage = cpage.Default
	}
	if c.MaxStringLiteralCodeUnits == 0 {
		c.MaxStringLiteralCodeUnits = 4097
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
