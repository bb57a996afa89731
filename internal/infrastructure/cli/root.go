package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/chaincalc/internal/app"
	"github.com/doeshing/chaincalc/internal/application/session"
	"github.com/doeshing/chaincalc/internal/domain"
	"github.com/doeshing/chaincalc/internal/infrastructure/cli/commands"
	"github.com/doeshing/chaincalc/internal/infrastructure/config"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	evalCmd := newEvalCommand(container)

	root := &cobra.Command{
		Use:   "chaincalc [command tokens]",
		Short: "chaincalc - chained stateful calculator",
		Long:  "chaincalc keeps a running value, a memory register, and an undoable operation history behind a small command language.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runREPL(cmd.Context(), container)
			}
			evalCmd.SetArgs(args)
			return evalCmd.ExecuteContext(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(evalCmd)
	root.AddCommand(newREPLCommand(container))
	root.AddCommand(commands.NewQuickCommand())
	root.AddCommand(commands.NewConfigCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	return root, nil
}

func newREPLCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive calculator session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runREPL(cmd.Context(), container)
		},
	}
}

func runREPL(ctx context.Context, container *app.Container) error {
	if container.Config.REPL.WatchConfig {
		watcher, err := config.NewWatcher(container.ConfigLoader, container.Config.Display, container.Logger)
		if err != nil {
			return fmt.Errorf("start config watcher: %w", err)
		}
		watcher.Start()
		defer watcher.Stop()
		container.Session.Settings = watcher
	}
	return NewREPL(nil, nil, container.Session, container.Config.REPL).Run(ctx)
}

func newEvalCommand(container *app.Container) *cobra.Command {
	var (
		initial     float64
		decimals    int
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "eval <command tokens>",
		Short: "Evaluate a chain of calculator commands on a fresh engine",
		Example: `  chaincalc eval set 10 add 5 mul 2 sub 10 div 2
  chaincalc eval set 100 pct 25 sqrt pow 2 add 75 --show-history`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := domain.NewCalculator(initial)
			if err != nil {
				return err
			}
			display := domain.DisplaySettings{
				Decimals:        decimals,
				HumanizeHistory: container.Config.Display.HumanizeHistory,
			}
			svc := &session.Service{
				Calc:     calc,
				Settings: config.StaticSettings{Settings: display},
				Logger:   container.Logger,
			}

			var last session.Result
			for _, tokens := range chunkEvalTokens(args) {
				res, err := svc.Execute(strings.Join(tokens, " "))
				if err != nil {
					return err
				}
				last = res
			}

			out := cmd.OutOrStdout()
			if last.Kind == session.KindValue {
				RenderResult(out, last, display)
			} else {
				RenderResult(out, session.Result{Kind: session.KindValue, Value: calc.Display(decimals)}, display)
			}
			if showHistory {
				RenderResult(out, session.Result{Kind: session.KindHistory, Entries: calc.History()}, display)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&initial, "initial", 0, "Initial engine value")
	cmd.Flags().IntVar(&decimals, "decimals", domain.ShortestDecimals, "Fraction digits for output (-1 = shortest)")
	cmd.Flags().BoolVar(&showHistory, "show-history", false, "Print the recorded history after evaluation")
	return cmd
}

// chunkEvalTokens groups a flat token sequence into per-command slices:
// operations with a mandatory operand consume the following token, memory
// adjustments consume it only when it parses as a number.
func chunkEvalTokens(args []string) [][]string {
	var out [][]string
	for i := 0; i < len(args); i++ {
		tok := strings.ToLower(args[i])
		switch tok {
		case "add", "sub", "mul", "div", "pow", "pct", "set", "+", "-", "*", "/", "^", "%":
			if i+1 < len(args) {
				out = append(out, []string{tok, args[i+1]})
				i++
				continue
			}
			out = append(out, []string{tok})
		case "m+", "m-":
			if i+1 < len(args) {
				if _, err := strconv.ParseFloat(args[i+1], 64); err == nil {
					out = append(out, []string{tok, args[i+1]})
					i++
					continue
				}
			}
			out = append(out, []string{tok})
		default:
			out = append(out, []string{tok})
		}
	}
	return out
}
