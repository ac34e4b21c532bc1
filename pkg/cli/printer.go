package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// printer writes user-facing result lines
type printer struct {
	w     io.Writer
	ok    *color.Color
	warn  *color.Color
	faint *color.Color
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:     w,
		ok:    color.New(color.FgGreen, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		faint: color.New(color.Faint),
	}
}

func (x *printer) Success(format string, args ...any) {
	_, _ = x.ok.Fprint(x.w, "✓ ")
	_, _ = fmt.Fprintf(x.w, format+"\n", args...)
}

func (x *printer) Warn(format string, args ...any) {
	_, _ = x.warn.Fprint(x.w, "! ")
	_, _ = fmt.Fprintf(x.w, format+"\n", args...)
}

func (x *printer) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(x.w, format+"\n", args...)
}

func (x *printer) Detail(format string, args ...any) {
	_, _ = x.faint.Fprintf(x.w, "  "+format+"\n", args...)
}
