package evolution

import (
	"path/filepath"
	"sort"

	"github.com/go-enry/go-enry/v2"
	"github.com/samber/lo"
)

const otherLanguage = "Other"

func detectLanguage(path, contents string) string {
	lang := enry.GetLanguage(filepath.Base(path), []byte(contents))
	if lang == "" {
		return otherLanguage
	}

	return lang
}

func languageBreakdown(results []FileResult) []LanguageEvolution {
	withLines := lo.Filter(results, func(r FileResult, _ int) bool { return r.TotalLines > 0 })

	groups := lo.GroupBy(withLines, func(r FileResult) string { return r.language })

	entries := make([]LanguageEvolution, 0, len(groups))
	for lang, rs := range groups {
		total := lo.SumBy(rs, func(r FileResult) int { return r.TotalLines })
		base := lo.SumBy(rs, func(r FileResult) int { return r.BaseLines })

		entries = append(entries, LanguageEvolution{
			Language:         lang,
			Files:            len(rs),
			TotalLines:       total,
			EvolvedLines:     total - base,
			EvolutionPercent: percentOf(total-base, total),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].EvolvedLines != entries[j].EvolvedLines {
			return entries[i].EvolvedLines > entries[j].EvolvedLines
		}
		return entries[i].Language < entries[j].Language
	})

	return entries
}
