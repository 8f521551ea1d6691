package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/rc"
)

func usage() {
	printVersion()
	fail(`
Compiles a Windows resource script (.rc) to a binary resource file (.res).

Usage:
    rc [flags] scriptfile

Flags:
    -fo file     output file (default: scriptfile with .res extension)
    -l lang      default language id, decimal or 0x hex (default 0x0409)
    -c codepage  default code page: 1252 or 65001 (default 1252)
    -i dir       additional include directory (repeatable)
    -tolerant    warn instead of error on an unrecognized code page
    -v           verbose logging

Examples:
    rc app.rc
    rc -fo build/app.res -i include app.rc`)
}

type includeDirs []string

func (d *includeDirs) String() string     { return strings.Join(*d, ",") }
func (d *includeDirs) Set(v string) error { *d = append(*d, v); return nil }

func main() {
	outFile := flag.String("fo", "", "output .res file")
	lang := flag.Int("l", 0x0409, "default language id")
	codePage := flag.Int("c", int(cpage.Windows1252), "default code page")
	tolerant := flag.Bool("tolerant", false, "warn instead of error on unrecognized code page")
	verbose := flag.Bool("v", false, "verbose logging")
	var includes includeDirs
	flag.Var(&includes, "i", "additional include directory (repeatable)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}
	printVersion()

	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	in := flag.Arg(0)
	out := *outFile
	if out == "" {
		out = strings.TrimSuffix(in, filepath.Ext(in)) + ".res"
	}

	cfg := rc.Config{
		DefaultLanguageID:                   uint16(*lang),
		DefaultCodePage:                     cpage.ID(*codePage),
		WarnInsteadOfErrorOnInvalidCodePage: *tolerant,
		IncludeDirectories:                  includes,
		Logger:                              logger,
	}

	c, err := rc.CompileFile(in, out, cfg)
	if c != nil {
		for _, d := range c.Diagnostics() {
			reportDiagnostic(d)
		}
	}
	check(err)
}

func reportDiagnostic(d diag.Diagnostic) {
	_, _ = fmt.Fprintf(os.Stderr, "line %d: %s\n", d.Span.Line, d.Error())
	for _, n := range d.Notes {
		_, _ = fmt.Fprintf(os.Stderr, "line %d: note: %s\n", n.Span.Line, n.Error())
	}
}

func printVersion() {
	fmt.Println("rc: resource compiler; ported from the reference RC tool to Go")
}

func check(err error) {
	if err != nil {
		fail(err)
	}
}

func fail(msg interface{}) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
