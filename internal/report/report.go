// Package report renders kinetic results for terminals and text files.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"gonum.org/v1/gonum/mat"

	"github.com/utkarsh5026/kinetic/graph"
	"github.com/utkarsh5026/kinetic/optimize"
)

var (
	bold  = color.New(color.Bold)
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed)
)

// Heading prints a bold section title followed by optional detail lines.
func Heading(w io.Writer, title string, details ...string) {
	fmt.Fprintln(w)
	_, _ = bold.Fprintln(w, title)
	for _, d := range details {
		fmt.Fprintln(w, "  "+d)
	}
	fmt.Fprintln(w)
}

// Errorf prints a red error line.
func Errorf(w io.Writer, format string, args ...any) {
	_, _ = red.Fprintf(w, format+"\n", args...)
}

// WriteSubgraphs writes one block per subgraph: its vertices, total weight
// and pruned adjacency matrix.
func WriteSubgraphs(w io.Writer, subs []graph.Subgraph) error {
	if _, err := fmt.Fprintf(w, "%d subgraphs\n", len(subs)); err != nil {
		return err
	}
	for i, s := range subs {
		if _, err := fmt.Fprintf(w, "\n# %d vertices=%v weight=%s\n", i, s.Vertices, formatFloat(s.Weight())); err != nil {
			return err
		}
		if s.Adjacency == nil || s.Adjacency.IsEmpty() {
			continue
		}
		if _, err := fmt.Fprintf(w, "%v\n", mat.Formatted(s.Adjacency, mat.Squeeze())); err != nil {
			return err
		}
	}
	return nil
}

// SolutionsTable renders one row per multi-start solution and marks the
// best one.
func SolutionsTable(w io.Writer, all []optimize.Solution, best optimize.Solution, tol float64) error {
	table := tablewriter.NewWriter(w)
	table.Header("Start", "x", "Objective", "Violation", "Iterations", "Converged")

	for i, s := range all {
		start := strconv.Itoa(i)
		if s.Value == best.Value && sameX(s.X, best.X) {
			start += " *"
		}
		violation := 0.0
		if len(s.History) > 0 {
			violation = s.History[len(s.History)-1].C
		}
		converged := "no"
		if s.Converged(tol) {
			converged = "yes"
		}
		if err := table.Append(
			start,
			FormatVector(s.X),
			formatFloat(s.ObjectiveValue()),
			strconv.FormatFloat(violation, 'e', 2, 64),
			strconv.Itoa(len(s.History)),
			converged,
		); err != nil {
			return err
		}
	}
	return table.Render()
}

// Summary prints the best solution and the elapsed time.
func Summary(w io.Writer, best optimize.Solution, elapsed time.Duration) {
	fmt.Fprintf(w, "Optimal arguments: %s\n", FormatVector(best.X))
	fmt.Fprint(w, "Objective function value: ")
	_, _ = green.Fprintln(w, formatFloat(best.ObjectiveValue()))
	fmt.Fprintf(w, "Total script time: %s\n", elapsed.Round(time.Microsecond))
}

// NewProgressBar returns a stderr progress bar for total steps.
func NewProgressBar(w io.Writer, total int, desc string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionSetWriter(w),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// FormatVector formats x as [a, b, c] with four decimals.
func FormatVector(x []float64) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'f', 4, 64)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 8, 64)
}

func sameX(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
