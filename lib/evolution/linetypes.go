package evolution

import (
	"os"
	"strings"

	"github.com/hhatto/gocloc"

	"github.com/gitevolve/evolve/lib/git"
)

type lineKind int

const (
	codeLine lineKind = iota
	commentLine
	blankLine
)

type lineTypeCounts struct {
	total   [3]int
	evolved [3]int
}

type LineTypeStats struct {
	TotalLines   int `json:"total_lines"`
	EvolvedLines int `json:"evolved_lines"`
}

type LineTypeBreakdown struct {
	Code    LineTypeStats `json:"code"`
	Comment LineTypeStats `json:"comment"`
	Blank   LineTypeStats `json:"blank"`
}

// classifyLines tags each line of contents as code, comment or blank. gocloc
// only reads files, so the blamed contents go through a temp file carrying
// the original name, keeping language detection working. Returns nil when
// classification is not possible; callers fall back per line.
func classifyLines(name, contents string) []lineKind {
	tmp, err := os.CreateTemp("", "evolve-*-"+name)
	if err != nil {
		return nil
	}

	defer os.Remove(tmp.Name())

	_, err = tmp.WriteString(contents)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil
	}

	languages := gocloc.NewDefinedLanguages()
	options := gocloc.NewClocOptions()

	var result []lineKind
	options.OnCode = func(line string) {
		result = append(result, codeLine)
	}
	options.OnComment = func(line string) {
		result = append(result, commentLine)
	}
	options.OnBlank = func(line string) {
		result = append(result, blankLine)
	}

	processor := gocloc.NewProcessor(languages, options)
	_, err = processor.Analyze([]string{tmp.Name()})
	if err != nil {
		return nil
	}

	return result
}

func countLineTypes(lines []git.BlameLine, kinds []lineKind, baseID string) lineTypeCounts {
	var counts lineTypeCounts

	for i, line := range lines {
		kind := codeLine
		switch {
		case i < len(kinds):
			kind = kinds[i]
		case strings.TrimSpace(line.Text) == "":
			kind = blankLine
		}

		counts.total[kind]++
		if line.CommitHash != baseID {
			counts.evolved[kind]++
		}
	}

	return counts
}

func lineTypeBreakdown(results []FileResult) *LineTypeBreakdown {
	var total, evolved [3]int

	for _, r := range results {
		for k := range r.types.total {
			total[k] += r.types.total[k]
			evolved[k] += r.types.evolved[k]
		}
	}

	return &LineTypeBreakdown{
		Code:    LineTypeStats{TotalLines: total[codeLine], EvolvedLines: evolved[codeLine]},
		Comment: LineTypeStats{TotalLines: total[commentLine], EvolvedLines: evolved[commentLine]},
		Blank:   LineTypeStats{TotalLines: total[blankLine], EvolvedLines: evolved[blankLine]},
	}
}
