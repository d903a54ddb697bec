package main

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MikeSquared-Agency/Wheel/internal/simulate"
)

var lang = language.English

func blank(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// formatReport renders one row per option. Widths are measured in terminal
// cells so wide option names stay aligned.
func formatReport(rep simulate.Report, alpha float64, used time.Duration) string {
	p := message.NewPrinter(lang)

	header := []string{"#", "Option", "Weight", "Count", "Expected", "Observed"}
	rows := make([][]string, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		rows = append(rows, []string{
			p.Sprintf("%d", r.Index),
			r.Name,
			p.Sprintf("%d", r.Weight),
			p.Sprintf("%d", r.Count),
			p.Sprintf("%.2f%%", r.Expected*100),
			p.Sprintf("%.2f%%", r.Observed*100),
		})
	}

	widths := make([]int, len(header))
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var divider strings.Builder
	divider.WriteString("+")
	for _, w := range widths {
		divider.WriteString(strings.Repeat("-", w+2) + "+")
	}
	divider.WriteString("\n")

	line := func(cells []string) string {
		var b strings.Builder
		b.WriteString("|")
		for i, cell := range cells {
			pad := blank(widths[i] - runewidth.StringWidth(cell))
			// names read left to right, numbers line up on the right
			if i == 1 {
				b.WriteString(" " + cell + pad + " |")
			} else {
				b.WriteString(" " + pad + cell + " |")
			}
		}
		b.WriteString("\n")
		return b.String()
	}

	var out strings.Builder
	out.WriteString(divider.String())
	out.WriteString(line(header))
	out.WriteString(divider.String())
	for _, row := range rows {
		out.WriteString(line(row))
	}
	out.WriteString(divider.String())

	out.WriteString(p.Sprintf("runs: %d  chi²: %.3f  df: %d  p: %.4f  time: %s\n",
		rep.Runs, rep.ChiSquared, rep.DF, rep.PValue, used.Round(time.Millisecond)))
	if rep.Fits(alpha) {
		out.WriteString(p.Sprintf("consistent with the weights at α=%.2f\n", alpha))
	} else {
		out.WriteString(p.Sprintf("NOT consistent with the weights at α=%.2f\n", alpha))
	}
	return out.String()
}
