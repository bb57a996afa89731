package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/doeshing/chaincalc/internal/application/session"
	"github.com/doeshing/chaincalc/internal/domain"
	"github.com/doeshing/chaincalc/internal/infrastructure/config"
	"github.com/doeshing/chaincalc/internal/pkg/logger"
)

func newSession(t *testing.T) *session.Service {
	t.Helper()
	calc, err := domain.NewCalculator(0)
	if err != nil {
		t.Fatalf("NewCalculator() error = %v", err)
	}
	return &session.Service{
		Calc:     calc,
		Settings: config.StaticSettings{Settings: domain.DisplaySettings{Decimals: domain.ShortestDecimals}},
		Logger:   logger.NewStd(false),
	}
}

func TestREPLRunsScript(t *testing.T) {
	in := strings.NewReader("set 10\nadd 5\nvalue\nexit\n")
	var out strings.Builder

	repl := NewREPL(in, &out, newSession(t), domain.REPLSettings{Prompt: domain.DefaultPrompt})
	if err := repl.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := "10\n15\n15\n"
	if out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestREPLContinuesAfterEngineError(t *testing.T) {
	in := strings.NewReader("set 9\ndiv 0\nvalue\n")
	var out strings.Builder

	repl := NewREPL(in, &out, newSession(t), domain.REPLSettings{Prompt: domain.DefaultPrompt})
	if err := repl.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d output lines, want 3: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "Error: ") {
		t.Errorf("error line = %q, want 'Error: ' prefix", lines[1])
	}
	if lines[2] != "9" {
		t.Errorf("value after failed divide = %q, want %q", lines[2], "9")
	}
}

func TestREPLStopsAtEOFWithoutTrailingNewline(t *testing.T) {
	in := strings.NewReader("add 2")
	var out strings.Builder

	repl := NewREPL(in, &out, newSession(t), domain.REPLSettings{})
	if err := repl.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if out.String() != "2\n" {
		t.Errorf("output = %q, want %q", out.String(), "2\n")
	}
}

func TestREPLStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repl := NewREPL(strings.NewReader("add 1\n"), &strings.Builder{}, newSession(t), domain.REPLSettings{})
	if err := repl.Run(ctx); err == nil {
		t.Error("expected context error")
	}
}
