// Package session maps textual calculator commands onto one process-lifetime
// engine instance. It is the application layer between the CLI (REPL or
// one-shot eval) and the domain calculator.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/doeshing/chaincalc/internal/domain"
	"github.com/doeshing/chaincalc/internal/ports"
)

// Kind tells the renderer what a Result carries.
type Kind string

const (
	KindNone    Kind = "none"
	KindValue   Kind = "value"
	KindHistory Kind = "history"
	KindMemory  Kind = "memory"
	KindMessage Kind = "message"
	KindHelp    Kind = "help"
	KindQuit    Kind = "quit"
)

// Result is the outcome of one executed command.
type Result struct {
	Kind    Kind
	Value   string
	Entries []domain.HistoryEntry
	Memory  *domain.MemoryRegister
	Message string
}

// Service executes calculator commands against a single engine.
type Service struct {
	Calc     *domain.Calculator
	Settings ports.SettingsSource
	Logger   ports.Logger
}

// Execute runs one command line. Engine failures are returned as errors with
// the engine already reset, so the session keeps accepting commands; the
// engine's atomicity guarantee means its state is untouched by the failure.
func (s *Service) Execute(line string) (Result, error) {
	if s.Calc == nil || s.Settings == nil || s.Logger == nil {
		return Result{}, errors.New("session.Service dependencies not satisfied")
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Result{Kind: KindNone}, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "add", "+":
		return s.mutateWithOperand(cmd, args, (*domain.Calculator).Add)
	case "sub", "-":
		return s.mutateWithOperand(cmd, args, (*domain.Calculator).Subtract)
	case "mul", "*":
		return s.mutateWithOperand(cmd, args, (*domain.Calculator).Multiply)
	case "div", "/":
		return s.mutateWithOperand(cmd, args, (*domain.Calculator).Divide)
	case "pow", "^":
		return s.mutateWithOperand(cmd, args, (*domain.Calculator).Power)
	case "pct", "%":
		return s.mutateWithOperand(cmd, args, (*domain.Calculator).Percentage)
	case "set":
		return s.mutateWithOperand(cmd, args, (*domain.Calculator).SetValue)
	case "sqrt":
		return s.mutate(cmd, (*domain.Calculator).Sqrt)
	case "clear":
		return s.mutate(cmd, (*domain.Calculator).Clear)
	case "undo":
		return s.mutate(cmd, (*domain.Calculator).Undo)
	case "ms":
		return s.mutate(cmd, (*domain.Calculator).MemoryStore)
	case "mr":
		return s.mutate(cmd, (*domain.Calculator).MemoryRecall)
	case "mc":
		return s.mutate(cmd, (*domain.Calculator).MemoryClear)
	case "m+":
		return s.adjustMemory(cmd, args, (*domain.Calculator).MemoryAdd)
	case "m-":
		return s.adjustMemory(cmd, args, (*domain.Calculator).MemorySubtract)
	case "value", "val", "v":
		return s.valueResult(cmd), nil
	case "history", "hist":
		return Result{Kind: KindHistory, Entries: s.Calc.History()}, nil
	case "clearhist":
		s.Calc.ClearHistory()
		return Result{Kind: KindMessage, Message: "History cleared."}, nil
	case "last":
		entry, ok := s.Calc.LastResult()
		if !ok {
			return Result{Kind: KindMessage, Message: "No operations recorded yet."}, nil
		}
		return Result{Kind: KindHistory, Entries: []domain.HistoryEntry{entry}}, nil
	case "memory", "mem":
		if reg, ok := s.Calc.Memory(); ok {
			return Result{Kind: KindMemory, Memory: &reg}, nil
		}
		return Result{Kind: KindMemory}, nil
	case "help", "?":
		return Result{Kind: KindHelp}, nil
	case "exit", "quit", "q":
		return Result{Kind: KindQuit}, nil
	default:
		return Result{}, fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

func (s *Service) mutate(cmd string, op func(*domain.Calculator) *domain.Calculator) (Result, error) {
	op(s.Calc)
	return s.finish(cmd)
}

func (s *Service) mutateWithOperand(cmd string, args []string, op func(*domain.Calculator, float64) *domain.Calculator) (Result, error) {
	operand, err := parseOperand(cmd, args)
	if err != nil {
		return Result{}, err
	}
	op(s.Calc, operand)
	return s.finish(cmd)
}

func (s *Service) adjustMemory(cmd string, args []string, op func(*domain.Calculator, ...float64) *domain.Calculator) (Result, error) {
	switch len(args) {
	case 0:
		op(s.Calc)
	case 1:
		operand, err := parseOperand(cmd, args)
		if err != nil {
			return Result{}, err
		}
		op(s.Calc, operand)
	default:
		return Result{}, fmt.Errorf("%s expects at most one number", cmd)
	}
	if err := s.Calc.Err(); err != nil {
		s.Calc.ResetErr()
		return Result{}, err
	}
	reg, _ := s.Calc.Memory()
	return Result{Kind: KindMemory, Memory: &reg}, nil
}

func (s *Service) finish(cmd string) (Result, error) {
	if err := s.Calc.Err(); err != nil {
		s.Calc.ResetErr()
		s.Logger.Debug("command failed", map[string]interface{}{"command": cmd, "error": err.Error()})
		return Result{}, err
	}
	return s.valueResult(cmd), nil
}

func (s *Service) valueResult(cmd string) Result {
	s.Logger.Debug("command executed", map[string]interface{}{
		"command": cmd,
		"value":   s.Calc.Value(),
	})
	return Result{Kind: KindValue, Value: s.displayValue()}
}

func (s *Service) displayValue() string {
	if d := s.Settings.Display().Decimals; d >= 0 {
		return s.Calc.Display(d)
	}
	return s.Calc.Display()
}

func parseOperand(cmd string, args []string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s expects exactly one number", cmd)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", cmd, args[0])
	}
	return v, nil
}
