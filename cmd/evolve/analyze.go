package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gitevolve/evolve/lib/consoles"
	"github.com/gitevolve/evolve/lib/evolution"
	"github.com/gitevolve/evolve/lib/git"
)

type AnalyzeCmd struct {
	Path string `arg:"" optional:"" default:"." type:"existingdir" help:"Repository to analyze."`

	Base      string   `short:"b" required:"" help:"Base commit hash, tag or reference to compare against."`
	JSON      bool     `name:"json" help:"Print the summary as JSON."`
	Files     bool     `help:"Include a breakdown of the most evolved files."`
	Languages bool     `help:"Include a per-language breakdown."`
	LineTypes bool     `help:"Split counts into code, comment and blank lines."`
	Include   []string `help:"Only analyze files matching these glob rules."`
	Exclude   []string `help:"Skip files matching these glob rules."`
	Parallel  bool     `default:"true" negatable:"" help:"Analyze files in parallel."`
	Workers   int      `default:"4" help:"Number of parallel workers."`
	Quiet     bool     `short:"q" help:"Only print the evolution percent."`
	Verbose   bool     `short:"v" help:"Show git output while analyzing."`
}

func (c *AnalyzeCmd) Run(ctx *cmdContext) error {
	console := consoles.NewStdErrConsole()
	if c.Quiet || c.JSON {
		console = consoles.NewQuietConsole()
	}

	client, err := git.NewClient(c.Path, &git.ClientOptions{Verbose: c.Verbose})
	if err != nil {
		return err
	}

	analyzer := evolution.NewAnalyzer(console, client, evolution.Options{
		FileBreakdown: c.Files,
		Languages:     c.Languages,
		LineTypes:     c.LineTypes,
		Parallel:      c.Parallel,
		Workers:       c.Workers,
		Include:       c.Include,
		Exclude:       c.Exclude,
		Progress:      !c.Quiet && !c.JSON,
	})

	summary, err := analyzer.Analyze(ctx.ctx, c.Base)
	if err != nil {
		return err
	}

	switch {
	case c.JSON:
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

	case c.Quiet:
		fmt.Printf("%.2f%%\n", summary.EvolutionPercent)

	default:
		printReport(os.Stdout, summary)
	}

	return nil
}
