package evolution

import (
	"context"

	"github.com/samber/lo"

	"github.com/gitevolve/evolve/lib/common"
	"github.com/gitevolve/evolve/lib/consoles"
	"github.com/gitevolve/evolve/lib/filters"
	"github.com/gitevolve/evolve/lib/git"
)

const DefaultWorkers = 4

// Spinning up one subprocess per file dominates on tiny repositories, so
// below this count the scan always runs serially.
const minFilesForParallel = 10

type Options struct {
	FileBreakdown bool
	Languages     bool
	LineTypes     bool
	Parallel      bool
	Workers       int
	Include       []string
	Exclude       []string
	Progress      bool
}

// Analyzer computes how much of the current tree still matches a base
// commit. Build one per invocation; it holds no global state.
type Analyzer struct {
	console consoles.Console
	client  git.Client
	options Options
}

func NewAnalyzer(console consoles.Console, client git.Client, options Options) *Analyzer {
	if options.Workers <= 0 {
		options.Workers = DefaultWorkers
	}

	return &Analyzer{
		console: console,
		client:  client,
		options: options,
	}
}

// Analyze resolves baseRef once, scans every tracked file and folds the
// per-file attributions into a Summary. The only errors it returns are a bad
// reference, an enumeration failure, or ctx cancellation; individual file
// failures degrade to zeroed results.
func (a *Analyzer) Analyze(ctx context.Context, baseRef string) (*Summary, error) {
	baseID, err := a.client.ResolveRevision(baseRef)
	if err != nil {
		return nil, err
	}

	files, err := a.client.ListFiles()
	if err != nil {
		return nil, err
	}

	files, err = a.filterFiles(files)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return &Summary{
			Repository:      a.client.Name(),
			BaseCommit:      baseID,
			SurvivalPercent: 100,
			Diagnostic:      DiagnosticNoTrackedFiles,
		}, nil
	}

	a.console.Printf("Analyzing %v against %.8v...\n", common.Plural(len(files), "tracked file"), baseID)

	results, err := a.scan(ctx, baseID, files)
	if err != nil {
		return nil, err
	}

	return a.aggregate(baseID, results), nil
}

func (a *Analyzer) filterFiles(files []string) ([]string, error) {
	if len(a.options.Include) == 0 && len(a.options.Exclude) == 0 {
		return files, nil
	}

	includes, err := filters.ParsePathFilterList(a.options.Include)
	if err != nil {
		return nil, err
	}

	excludes, err := filters.ParsePathFilterList(a.options.Exclude)
	if err != nil {
		return nil, err
	}

	filter := filters.Combine(includes, excludes)

	return lo.Filter(files, func(path string, _ int) bool { return filter(path) }), nil
}
