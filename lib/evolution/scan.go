package evolution

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"

	"github.com/gitevolve/evolve/lib/git"
	"github.com/gitevolve/evolve/lib/utils"
)

type scanWork struct {
	index int
	path  string
}

// scan produces one FileResult per file. Files are independent, so the
// parallel path is a plain fan-out capped at Workers with a single fan-in;
// aggregation never starts on a partial result set.
func (a *Analyzer) scan(ctx context.Context, baseID string, files []string) ([]FileResult, error) {
	work := lo.Map(files, func(path string, i int) scanWork {
		return scanWork{index: i, path: path}
	})

	var bar *progressbar.ProgressBar
	if a.options.Progress {
		bar = utils.NewProgressBar(len(work))
	}

	results := make([]FileResult, 0, len(work))

	collect := func(r FileResult) {
		if r.err != nil {
			if bar != nil {
				_ = bar.Clear()
			}
			a.console.Warnf("failed to analyze %v: %v\n", r.Path, r.err)
		}

		if bar != nil {
			bar.Describe(utils.TruncateFilename(r.Path))
			_ = bar.Add(1)
		}

		results = append(results, r)
	}

	if a.options.Parallel && len(work) > minFilesForParallel {
		group := utils.ParallelFor(ctx, work, func(w scanWork) (FileResult, error) {
			return a.scanFile(ctx, baseID, w), nil
		}, utils.ParallelOptions{Routines: a.options.Workers})

		for r := range group.Output {
			collect(r)
		}

		if err := group.Error(); err != nil {
			return nil, err
		}
	} else {
		for _, w := range work {
			if err := ctx.Err(); err != nil {
				break
			}

			collect(a.scanFile(ctx, baseID, w))
		}
	}

	if bar != nil {
		_ = bar.Clear()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// scanFile attributes one file. A blame failure (deleted in the working
// tree, binary, permissions) yields a zeroed result and a warning later at
// fan-in; it contributes nothing to either side of the percentage.
func (a *Analyzer) scanFile(ctx context.Context, baseID string, w scanWork) FileResult {
	result := FileResult{Path: w.path, index: w.index}

	lines, err := a.client.BlameFile(ctx, w.path)
	if err != nil {
		result.err = err
		return result
	}

	result.TotalLines = len(lines)
	result.commits = set.New[string](16)

	for _, line := range lines {
		if line.CommitHash == baseID {
			result.BaseLines++
		} else {
			result.commits.Insert(line.CommitHash)
		}
	}

	if a.options.Languages || a.options.LineTypes {
		contents := joinLines(lines)

		if a.options.Languages {
			result.language = detectLanguage(w.path, contents)
		}
		if a.options.LineTypes {
			kinds := classifyLines(filepath.Base(w.path), contents)
			result.types = countLineTypes(lines, kinds, baseID)
		}
	}

	return result
}

func joinLines(lines []git.BlameLine) string {
	return strings.Join(lo.Map(lines, func(l git.BlameLine, _ int) string { return l.Text }), "\n")
}
