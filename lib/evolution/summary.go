package evolution

import (
	"math"
	"sort"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"

	"github.com/gitevolve/evolve/lib/utils"
)

// DiagnosticNoTrackedFiles marks a summary whose zero evolution comes from an
// empty file list, not from an unchanged repository.
const DiagnosticNoTrackedFiles = "no tracked files found"

const maxBreakdownFiles = 20

// FileResult is the attribution of a single tracked file: how many lines it
// has now and how many of those still belong to the base commit.
// Always 0 <= BaseLines <= TotalLines.
type FileResult struct {
	Path       string
	TotalLines int
	BaseLines  int

	index    int
	language string
	commits  *set.Set[string]
	types    lineTypeCounts
	err      error
}

// Summary is the terminal artifact of an analysis, handed to the renderer.
type Summary struct {
	Repository          string              `json:"repository"`
	BaseCommit          string              `json:"base_commit"`
	TotalLines          int                 `json:"total_lines"`
	BaseLinesSurviving  int                 `json:"base_lines_surviving"`
	EvolvedLines        int                 `json:"evolved_lines"`
	EvolutionPercent    float64             `json:"evolution_percent"`
	SurvivalPercent     float64             `json:"survival_percent"`
	FilesAnalyzed       int                 `json:"files_analyzed"`
	ContributingCommits int                 `json:"contributing_commits"`
	Diagnostic          string              `json:"diagnostic,omitempty"`
	FileBreakdown       []FileEvolution     `json:"file_breakdown,omitempty"`
	Languages           []LanguageEvolution `json:"language_breakdown,omitempty"`
	LineTypes           *LineTypeBreakdown  `json:"line_types,omitempty"`
}

type FileEvolution struct {
	Path             string  `json:"file"`
	TotalLines       int     `json:"total_lines"`
	EvolvedLines     int     `json:"evolved_lines"`
	EvolutionPercent float64 `json:"evolution_percent"`
}

type LanguageEvolution struct {
	Language         string  `json:"language"`
	Files            int     `json:"files"`
	TotalLines       int     `json:"total_lines"`
	EvolvedLines     int     `json:"evolved_lines"`
	EvolutionPercent float64 `json:"evolution_percent"`
}

func (a *Analyzer) aggregate(baseID string, results []FileResult) *Summary {
	total := lo.SumBy(results, func(r FileResult) int { return r.TotalLines })
	base := lo.SumBy(results, func(r FileResult) int { return r.BaseLines })
	evolved := total - base

	commits := set.New[string](64)
	for _, r := range results {
		if r.commits != nil {
			for _, hash := range r.commits.Slice() {
				commits.Insert(hash)
			}
		}
	}

	result := &Summary{
		Repository:          a.client.Name(),
		BaseCommit:          baseID,
		TotalLines:          total,
		BaseLinesSurviving:  base,
		EvolvedLines:        evolved,
		EvolutionPercent:    percentOf(evolved, total),
		FilesAnalyzed:       len(results),
		ContributingCommits: commits.Size(),
	}

	// Derived from the rounded evolution so the pair sums to 100.00.
	result.SurvivalPercent = round2(100 - result.EvolutionPercent)

	if a.options.FileBreakdown {
		result.FileBreakdown = fileBreakdown(results)
	}
	if a.options.Languages {
		result.Languages = languageBreakdown(results)
	}
	if a.options.LineTypes {
		result.LineTypes = lineTypeBreakdown(results)
	}

	return result
}

func fileBreakdown(results []FileResult) []FileEvolution {
	withLines := lo.Filter(results, func(r FileResult, _ int) bool { return r.TotalLines > 0 })

	// Completion order under parallel execution is arbitrary; restore
	// enumeration order so percent ties break deterministically.
	sort.Slice(withLines, func(i, j int) bool { return withLines[i].index < withLines[j].index })

	entries := lo.Map(withLines, func(r FileResult, _ int) FileEvolution {
		evolved := r.TotalLines - r.BaseLines
		return FileEvolution{
			Path:             r.Path,
			TotalLines:       r.TotalLines,
			EvolvedLines:     evolved,
			EvolutionPercent: percentOf(evolved, r.TotalLines),
		}
	})

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EvolutionPercent > entries[j].EvolutionPercent
	})

	return entries[:utils.Min(maxBreakdownFiles, len(entries))]
}

func percentOf(part, total int) float64 {
	if total <= 0 {
		return 0
	}

	return round2(float64(part) / float64(total) * 100)
}

// round2 rounds half away from zero to 2 decimal digits.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
