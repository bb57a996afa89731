package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/doeshing/chaincalc/internal/pkg/quickcalc"
)

// NewQuickCommand creates the quick command: stateless one-shot arithmetic
// without an engine, history, or memory.
func NewQuickCommand() *cobra.Command {
	var decimals int

	cmd := &cobra.Command{
		Use:   "quick <op> <operands...>",
		Short: "One-shot arithmetic without engine state",
		Long: `Computes a single operation and prints the result.

Operations:
  add|sub|mul|div <a> <b>
  pow <base> <exponent>
  pct <value> <percent>
  sqrt <value>
  sum <values...>`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runQuickOp(args[0], args[1:])
			if err != nil {
				return err
			}
			return printQuickResult(cmd.OutOrStdout(), result, decimals)
		},
	}

	cmd.Flags().IntVar(&decimals, "decimals", -1, "Fraction digits for output (-1 = shortest)")
	return cmd
}

func runQuickOp(op string, rawOperands []string) (float64, error) {
	operands, err := parseFloats(rawOperands)
	if err != nil {
		return 0, err
	}

	switch op {
	case "add":
		return withArity(op, operands, 2, quickcalc.Add)
	case "sub":
		return withArity(op, operands, 2, quickcalc.Subtract)
	case "mul":
		return withArity(op, operands, 2, quickcalc.Multiply)
	case "div":
		return withArity(op, operands, 2, quickcalc.Divide)
	case "pow":
		return withArity(op, operands, 2, quickcalc.Power)
	case "pct":
		return withArity(op, operands, 2, quickcalc.Percentage)
	case "sqrt":
		if len(operands) != 1 {
			return 0, fmt.Errorf("sqrt expects exactly 1 operand, got %d", len(operands))
		}
		return quickcalc.Sqrt(operands[0])
	case "sum":
		return quickcalc.Sum(operands...)
	default:
		return 0, fmt.Errorf("unsupported operation: %s", op)
	}
}

func withArity(op string, operands []float64, want int, fn func(a, b float64) (float64, error)) (float64, error) {
	if len(operands) != want {
		return 0, fmt.Errorf("%s expects exactly %d operands, got %d", op, want, len(operands))
	}
	return fn(operands[0], operands[1])
}

func parseFloats(raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, s := range raw {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		out[i] = v
	}
	return out, nil
}

func printQuickResult(out io.Writer, result float64, decimals int) error {
	if decimals >= 0 {
		_, err := fmt.Fprintln(out, strconv.FormatFloat(result, 'f', decimals, 64))
		return err
	}
	_, err := fmt.Fprintln(out, strconv.FormatFloat(result, 'g', -1, 64))
	return err
}
