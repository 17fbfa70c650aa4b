package interpreter

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

type tracer struct {
	w     io.Writer
	paint *color.Color
	fail  *color.Color
}

// SetTrace turns statement tracing on, w == nil turns it off.
// Trace lines never go to the program output.
func (i *Interpreter) SetTrace(w io.Writer, colored bool) {
	if w == nil {
		i.trace = nil
		return
	}

	t := &tracer{
		w:     w,
		paint: color.New(color.FgBlue),
		fail:  color.New(color.FgRed),
	}
	if colored {
		t.paint.EnableColor()
		t.fail.EnableColor()
	} else {
		t.paint.DisableColor()
		t.fail.DisableColor()
	}
	i.trace = t
}

func (t *tracer) statement(kind string, src []rune) {
	if t == nil {
		return
	}
	t.paint.Fprintf(t.w, "trace: %s `%s`\n", kind, strings.TrimSpace(string(src)))
}

func (t *tracer) verdict(line string, err error, names []string) {
	if t == nil {
		return
	}
	if err != nil {
		t.fail.Fprintf(t.w, "trace: line %q failed: %v\n", line, err)
		return
	}
	t.paint.Fprintf(t.w, "trace: line ok, variables [%s]\n", strings.Join(names, " "))
}
