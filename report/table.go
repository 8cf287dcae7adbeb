// Package report renders benchmark results as a fixed-width console table.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/arloliu/codecbench/bench"
)

const (
	labelWidth  = 6
	columnWidth = 12
)

// Columns holds the header labels in print order.
var Columns = []string{"algo", "w (MiB/s)", "write", "r (MiB/s)", "read", "size (MiB)", "took"}

// Table writes a header line and one row per result to an io.Writer.
type Table struct {
	w io.Writer
}

// NewTable returns a Table writing to w.
func NewTable(w io.Writer) *Table {
	return &Table{w: w}
}

// WriteHeader writes the column labels.
func (t *Table) WriteHeader() error {
	row := fmt.Sprintf("%*s", labelWidth, Columns[0])
	for _, col := range Columns[1:] {
		row += fmt.Sprintf("%*s", columnWidth, col)
	}

	_, err := fmt.Fprintln(t.w, row)

	return err
}

// WriteRow writes one formatted result.
func (t *Table) WriteRow(res bench.Result) error {
	_, err := fmt.Fprintln(t.w, FormatRow(res))
	return err
}

// FormatRow renders res as a single line without the trailing newline.
//
// Throughput cells read "n/a" when the phase duration was zero.
func FormatRow(res bench.Result) string {
	return fmt.Sprintf("%*s%*s%*s%*s%*s%*.2f%*s",
		labelWidth, res.Algorithm,
		columnWidth, formatThroughput(res.FileSize, res.WriteDuration),
		columnWidth, formatDuration(res.WriteDuration),
		columnWidth, formatThroughput(res.FileSize, res.ReadDuration),
		columnWidth, formatDuration(res.ReadDuration),
		columnWidth, res.FileSizeMiB(),
		columnWidth, formatDuration(res.TotalDuration()),
	)
}

func formatThroughput(size int64, d time.Duration) string {
	if d <= 0 {
		return "n/a"
	}

	return fmt.Sprintf("%.2f", bench.Throughput(size, d))
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
