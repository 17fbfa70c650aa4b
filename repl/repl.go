package repl

import (
	"bufio"
	"io"
	"math"
	"rdparser/config"
	"rdparser/internals"
	"rdparser/interpreter"

	"github.com/fatih/color"
)

// Start reads lines from in until the sentinel line or the end of input, every
// line runs as its own program. Failed lines are reported on out and collected.
func Start(in io.Reader, out io.Writer, cfg config.Config) (*internals.ErrorCollector, error) {
	scanner := bufio.NewScanner(in)
	// a line has no length limit, only its identifiers and numbers do
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	errs := internals.NewErrorCollector()

	interp := interpreter.NewInterpreter(nil, out)
	interp.SetTrace(cfg.TraceWriter(), cfg.Color)

	prompt := color.New(color.Bold)
	failure := color.New(color.FgRed)
	if cfg.Color {
		prompt.EnableColor()
		failure.EnableColor()
	} else {
		prompt.DisableColor()
		failure.DisableColor()
	}

	number := 0
	for {
		if cfg.Prompt != "" {
			prompt.Fprint(out, cfg.Prompt)
		}
		if !scanner.Scan() {
			return errs, scanner.Err()
		}
		number++

		line := internals.NormalizeLine(scanner.Text())
		if internals.IsSentinel(line, cfg.Sentinel) {
			return errs, nil
		}

		if err := interp.Run(line); err != nil {
			failure.Fprintln(out, internals.SyntaxErrorMessage)
			errs.Add(number, line, err)
		}
	}
}
