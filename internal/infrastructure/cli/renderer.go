package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/chaincalc/internal/application/session"
	"github.com/doeshing/chaincalc/internal/domain"
)

const helpText = `Commands:
  add|sub|mul|div|pow|pct <n>  apply the operation to the current value
  sqrt                         square root of the current value
  set <n>                      replace the current value (not recorded)
  clear                        reset the value to 0 (recorded)
  value                        print the current value
  history                      list recorded operations
  last                         show the most recent operation
  clearhist                    discard all recorded operations
  undo                         roll back the most recent operation
  ms | mr | mc                 memory store / recall / clear
  m+ [n] | m- [n]              memory add / subtract (default: current value)
  memory                       show the memory register
  help                         show this text
  exit                         leave the session`

const (
	msgNoHistoryRecorded = "No operations recorded yet."
	msgMemoryEmpty       = "Memory is empty."
)

// RenderResult prints one session result in a plain, ASCII-only format.
func RenderResult(w io.Writer, res session.Result, display domain.DisplaySettings) {
	switch res.Kind {
	case session.KindValue:
		fmt.Fprintln(w, res.Value)
	case session.KindMessage:
		fmt.Fprintln(w, res.Message)
	case session.KindHelp:
		fmt.Fprintln(w, helpText)
	case session.KindMemory:
		if res.Memory == nil {
			fmt.Fprintln(w, msgMemoryEmpty)
			return
		}
		fmt.Fprintf(w, "Memory: %s (updated %s)\n",
			formatValue(res.Memory.Value, display.Decimals),
			formatTimestamp(res.Memory.UpdatedAt, display.HumanizeHistory))
	case session.KindHistory:
		renderHistory(w, res.Entries, display)
	}
}

func renderHistory(w io.Writer, entries []domain.HistoryEntry, display domain.DisplaySettings) {
	if len(entries) == 0 {
		fmt.Fprintln(w, msgNoHistoryRecorded)
		return
	}
	for i, entry := range entries {
		operands := make([]string, len(entry.Operands))
		for j, operand := range entry.Operands {
			operands[j] = formatValue(operand, domain.ShortestDecimals)
		}
		fmt.Fprintf(w, "%3d. %s(%s) = %s  (%s)\n",
			i+1,
			entry.Operation,
			strings.Join(operands, ", "),
			formatValue(entry.Result, display.Decimals),
			formatTimestamp(entry.Timestamp, display.HumanizeHistory))
	}
}

func formatValue(v float64, decimals int) string {
	if decimals >= 0 {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatTimestamp(ts time.Time, humanized bool) string {
	if humanized {
		return humanize.Time(ts)
	}
	return ts.Format(time.RFC3339)
}
