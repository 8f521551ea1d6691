package rc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/emit"
	"github.com/fzipp/rcc/parse"
)

// Compiler runs one compilation and accumulates its diagnostics,
// mirroring the teacher's ors.Scanner/orp.Parser pair bundled behind a
// single entry point.
type Compiler struct {
	cfg   Config
	diags diag.List
}

// New creates a Compiler for cfg, applying defaults for zero fields.
func New(cfg Config) *Compiler {
	return &Compiler{cfg: cfg.withDefaults()}
}

// Diagnostics returns every diagnostic accumulated by the most recent
// Compile/CompileFile call, in emission order (spec.md §5).
func (c *Compiler) Diagnostics() []diag.Diagnostic {
	return c.diags.All()
}

// Compile compiles the resource script source (already read into memory)
// and returns the serialized .res bytes. sourceDir is the directory used
// to resolve relative external-file references (spec.md §4.6); it is
// typically the source file's own directory.
func (c *Compiler) Compile(source []byte, sourceDir string) ([]byte, error) {
	c.diags = diag.List{}
	c.cfg.Logger.Debug("compile starting", "sourceDir", sourceDir)

	cps := cpage.NewState(c.cfg.DefaultCodePage)
	root := parse.Parse(source, cps, &c.diags)
	if c.diags.HasErrors() {
		return nil, fmt.Errorf("rc: parse: %w", firstError(c.diags.All()))
	}

	ctx := emit.NewContext(cps, &c.diags, c.cfg.Logger)
	ctx.SourceDir = sourceDir
	ctx.IncludeDirs = c.cfg.IncludeDirectories
	ctx.DefaultLanguageID = c.cfg.DefaultLanguageID
	ctx.MaxStringCodeUnits = c.cfg.MaxStringLiteralCodeUnits
	ctx.NullTerminateStringTableStrings = c.cfg.NullTerminateStringTableStrings

	out, err := emit.EmitAll(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("rc: emit: %w", err)
	}
	if c.diags.HasErrors() {
		return nil, fmt.Errorf("rc: emit: %w", firstError(c.diags.All()))
	}
	c.cfg.Logger.Debug("compile finished", "bytes", len(out))
	return out, nil
}

// CompileFile reads path, compiles it, and writes the result to outPath.
// The source file's own directory is used as the base for resolving
// relative external-file references (spec.md §4.6).
func CompileFile(path, outPath string, cfg Config) (*Compiler, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rc: %s: %w", path, err)
	}
	c := New(cfg)
	out, err := c.Compile(source, filepath.Dir(path))
	if err != nil {
		return c, err
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return c, fmt.Errorf("rc: %s: %w", outPath, err)
	}
	return c, nil
}

func firstError(ds []diag.Diagnostic) error {
	for _, d := range ds {
		if d.Kind == diag.Error {
			dd := d
			return dd
		}
	}
	return fmt.Errorf("rc: compilation failed")
}
