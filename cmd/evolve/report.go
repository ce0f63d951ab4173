package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/gitevolve/evolve/lib/common"
	"github.com/gitevolve/evolve/lib/evolution"
	"github.com/gitevolve/evolve/lib/utils"
)

const maxBreakdownDisplay = 10

func printReport(w io.Writer, s *evolution.Summary) {
	printHeader(w, fmt.Sprintf("Evolution report: %v", s.Repository))
	fmt.Fprintf(w, "  Base commit: %.8v\n", s.BaseCommit)

	if s.Diagnostic != "" {
		fmt.Fprintf(w, "\n  %v\n\n", s.Diagnostic)
		return
	}

	fmt.Fprintf(w, "\n  Code statistics\n")
	fmt.Fprintf(w, "  %v\n", strings.Repeat("-", 40))
	printStat(w, "Total lines", s.TotalLines)
	printStat(w, "Base lines surviving", s.BaseLinesSurviving)
	printStat(w, "Evolved lines", s.EvolvedLines)
	printStat(w, "Files analyzed", s.FilesAnalyzed)
	printStat(w, "Contributing commits", s.ContributingCommits)

	fmt.Fprintf(w, "\n  Evolution: %.2f%% | Survival: %.2f%%\n", s.EvolutionPercent, s.SurvivalPercent)
	fmt.Fprintf(w, "  %v\n", percentBar(s.EvolutionPercent, 50))

	if s.LineTypes != nil {
		fmt.Fprintf(w, "\n")
		printHeader(w, "Line types")
		printLineType(w, "Code", s.LineTypes.Code)
		printLineType(w, "Comment", s.LineTypes.Comment)
		printLineType(w, "Blank", s.LineTypes.Blank)
	}

	if len(s.Languages) > 0 {
		fmt.Fprintf(w, "\n")
		printHeader(w, "Languages")
		for _, l := range s.Languages {
			fmt.Fprintf(w, "  %-20v %v %6.2f%% (%v of %v evolved)\n",
				l.Language, percentBar(l.EvolutionPercent, 20), l.EvolutionPercent,
				humanize.Comma(int64(l.EvolvedLines)), common.Plural(l.TotalLines, "line"))
		}
	}

	if len(s.FileBreakdown) > 0 {
		fmt.Fprintf(w, "\n")
		printHeader(w, "Top evolved files")
		for i, f := range s.FileBreakdown {
			if i >= maxBreakdownDisplay {
				break
			}

			fmt.Fprintf(w, "  %2v. %v\n", i+1, utils.TruncateFilename(f.Path))
			fmt.Fprintf(w, "      %v %.2f%% (%v)\n",
				percentBar(f.EvolutionPercent, 20), f.EvolutionPercent,
				common.Plural(f.EvolvedLines, "line"))
		}
	}

	fmt.Fprintf(w, "\n")
}

func printHeader(w io.Writer, text string) {
	line := strings.Repeat("-", 60)
	fmt.Fprintf(w, "%v\n  %v\n%v\n", line, text, line)
}

func printStat(w io.Writer, name string, value int) {
	fmt.Fprintf(w, "  %-25v %v\n", name, humanize.Comma(int64(value)))
}

func printLineType(w io.Writer, name string, stats evolution.LineTypeStats) {
	fmt.Fprintf(w, "  %-10v %v evolved of %v\n", name,
		humanize.Comma(int64(stats.EvolvedLines)), common.Plural(stats.TotalLines, "line"))
}

func percentBar(percent float64, width int) string {
	filled := int(float64(width) * percent / 100)
	filled = utils.Min(utils.Max(filled, 0), width)

	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
