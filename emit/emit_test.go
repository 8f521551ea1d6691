package emit

import (
	"io"
	"log/slog"

	"github.com/fzipp/rcc/cpage"
	"github.com/fzipp/rcc/diag"
	"github.com/fzipp/rcc/litr"
	"github.com/fzipp/rcc/resio"
)

// testContext builds a Context with a discarding logger, for tests that
// don't care about log output but need a non-nil *slog.Logger.
func testContext() *Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewContext(cpage.NewState(cpage.Windows1252), &diag.List{}, logger)
}

func numLit(v uint32) litr.Number {
	return litr.Number{Value: v}
}

func testWriter() *resio.Writer {
	return resio.NewWriter()
}
