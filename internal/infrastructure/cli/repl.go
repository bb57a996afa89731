package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/doeshing/chaincalc/internal/application/session"
	"github.com/doeshing/chaincalc/internal/domain"
)

// REPL runs the interactive calculator loop over stdio. Engine errors are
// printed and the loop continues; only `exit`, EOF, or context cancellation
// end the session.
type REPL struct {
	in          *bufio.Reader
	out         io.Writer
	service     *session.Service
	settings    domain.REPLSettings
	interactive bool
}

// NewREPL constructs a REPL referencing stdio when in/out are nil. The
// prompt and banner are suppressed when stdin is not a terminal, so piped
// scripts get clean output.
func NewREPL(in io.Reader, out io.Writer, service *session.Service, settings domain.REPLSettings) *REPL {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	interactive := false
	if f, ok := in.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &REPL{
		in:          bufio.NewReader(in),
		out:         out,
		service:     service,
		settings:    settings,
		interactive: interactive,
	}
}

// Run processes commands until exit, EOF, or context cancellation.
func (r *REPL) Run(ctx context.Context) error {
	if r.interactive && r.settings.ShowBanner {
		fmt.Fprintf(r.out, "chaincalc interactive session (current value: %s)\n", r.currentValue())
		fmt.Fprintln(r.out, "Type 'help' for commands, 'exit' to leave.")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.interactive {
			fmt.Fprint(r.out, r.settings.Prompt)
		}

		line, readErr := r.in.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}

		if line != "" {
			if quit := r.execute(line); quit {
				return nil
			}
		}
		if readErr != nil {
			return nil
		}
	}
}

// execute runs one line and reports whether the session should end.
func (r *REPL) execute(line string) bool {
	res, err := r.service.Execute(line)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return false
	}
	if res.Kind == session.KindQuit {
		return true
	}
	RenderResult(r.out, res, r.service.Settings.Display())
	return false
}

func (r *REPL) currentValue() string {
	if d := r.service.Settings.Display().Decimals; d >= 0 {
		return r.service.Calc.Display(d)
	}
	return r.service.Calc.Display()
}
