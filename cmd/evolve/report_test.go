package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bloomberg/go-testgroup"

	"github.com/gitevolve/evolve/lib/evolution"
)

func TestReport(t *testing.T) {
	testgroup.RunInParallel(t, &ReportTests{})
}

type ReportTests struct {
}

func (g *ReportTests) FullReport(t *testgroup.T) {
	summary := &evolution.Summary{
		Repository:          "myrepo",
		BaseCommit:          strings.Repeat("a", 40),
		TotalLines:          150,
		BaseLinesSurviving:  90,
		EvolvedLines:        60,
		EvolutionPercent:    40.00,
		SurvivalPercent:     60.00,
		FilesAnalyzed:       2,
		ContributingCommits: 3,
		FileBreakdown: []evolution.FileEvolution{
			{Path: "a.go", TotalLines: 100, EvolvedLines: 60, EvolutionPercent: 60.00},
			{Path: "b.go", TotalLines: 50, EvolvedLines: 0, EvolutionPercent: 0.00},
		},
	}

	out := &bytes.Buffer{}
	printReport(out, summary)

	report := out.String()
	t.Contains(report, "Evolution report: myrepo")
	t.Contains(report, "Base commit: aaaaaaaa")
	t.Contains(report, "Total lines")
	t.Contains(report, "150")
	t.Contains(report, "Evolution: 40.00% | Survival: 60.00%")
	t.Contains(report, "Top evolved files")
	t.Contains(report, "a.go")
	t.Contains(report, "60 lines")
}

func (g *ReportTests) NoTrackedFiles(t *testgroup.T) {
	summary := &evolution.Summary{
		Repository:      "empty",
		BaseCommit:      strings.Repeat("b", 40),
		SurvivalPercent: 100,
		Diagnostic:      evolution.DiagnosticNoTrackedFiles,
	}

	out := &bytes.Buffer{}
	printReport(out, summary)

	report := out.String()
	t.Contains(report, evolution.DiagnosticNoTrackedFiles)
	t.NotContains(report, "Total lines")
}

func (g *ReportTests) LargeNumbersAreGrouped(t *testgroup.T) {
	summary := &evolution.Summary{
		Repository:       "big",
		BaseCommit:       strings.Repeat("c", 40),
		TotalLines:       1234567,
		EvolvedLines:     1234567,
		EvolutionPercent: 100,
		FilesAnalyzed:    4321,
	}

	out := &bytes.Buffer{}
	printReport(out, summary)

	t.Contains(out.String(), "1,234,567")
}

func (g *ReportTests) PercentBar(t *testgroup.T) {
	t.Equal("[..........]", percentBar(0, 10))
	t.Equal("[#####.....]", percentBar(50, 10))
	t.Equal("[##########]", percentBar(100, 10))
	t.Equal("[#.........]", percentBar(19, 10))
}
