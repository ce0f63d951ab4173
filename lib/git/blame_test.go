package git

import (
	"strings"
	"testing"

	"github.com/bloomberg/go-testgroup"
)

func TestParseBlamePorcelain(t *testing.T) {
	testgroup.RunInParallel(t, &ParseBlamePorcelainTests{})
}

type ParseBlamePorcelainTests struct {
}

var (
	hashA = strings.Repeat("a", 39) + "1"
	hashB = strings.Repeat("b", 39) + "2"
)

func (g *ParseBlamePorcelainTests) AttributesLinesToCommits(t *testgroup.T) {
	out := strings.Join([]string{
		hashA + " 1 1 2",
		"author John",
		"author-mail <john@example.com>",
		"summary first commit",
		"filename foo.go",
		"\tpackage foo",
		hashA + " 2 2",
		"\t",
		hashB + " 3 3 1",
		"author Jane",
		"summary second commit",
		"filename foo.go",
		"\tfunc Foo() {}",
	}, "\n")

	lines, err := parseBlamePorcelain([]byte(out))

	t.NoError(err)
	t.Equal([]BlameLine{
		{CommitHash: hashA, Text: "package foo"},
		{CommitHash: hashA, Text: ""},
		{CommitHash: hashB, Text: "func Foo() {}"},
	}, lines)
}

func (g *ParseBlamePorcelainTests) EmptyOutput(t *testgroup.T) {
	lines, err := parseBlamePorcelain(nil)

	t.NoError(err)
	t.Len(lines, 0)
}

func (g *ParseBlamePorcelainTests) MetadataLinesAreIgnored(t *testgroup.T) {
	out := strings.Join([]string{
		hashA + " 1 1 1",
		"author John",
		"previous " + hashB + " foo.go",
		"boundary",
		"filename foo.go",
		"\tcontent",
	}, "\n")

	lines, err := parseBlamePorcelain([]byte(out))

	t.NoError(err)
	t.Equal([]BlameLine{{CommitHash: hashA, Text: "content"}}, lines)
}

func (g *ParseBlamePorcelainTests) UsesFullCommitIds(t *testgroup.T) {
	// Two commits sharing a short prefix must not be conflated.
	twin := hashA[:39] + "9"

	out := strings.Join([]string{
		hashA + " 1 1 1",
		"filename foo.go",
		"\tone",
		twin + " 2 2 1",
		"filename foo.go",
		"\ttwo",
	}, "\n")

	lines, err := parseBlamePorcelain([]byte(out))

	t.NoError(err)
	t.Equal(hashA, lines[0].CommitHash)
	t.Equal(twin, lines[1].CommitHash)
}

func (g *ParseBlamePorcelainTests) TabsInContentAreKept(t *testgroup.T) {
	out := strings.Join([]string{
		hashA + " 1 1 1",
		"filename foo.go",
		"\t\tindented with a tab",
	}, "\n")

	lines, err := parseBlamePorcelain([]byte(out))

	t.NoError(err)
	t.Equal("\tindented with a tab", lines[0].Text)
}

func (g *ParseBlamePorcelainTests) ContentBeforeHeaderFails(t *testgroup.T) {
	_, err := parseBlamePorcelain([]byte("\torphan line\n"))

	t.Error(err)
}

func (g *ParseBlamePorcelainTests) HeaderDetection(t *testgroup.T) {
	t.True(isBlameHeader(hashA + " 1 1"))
	t.True(isBlameHeader(hashA + " 10 20 3"))

	t.False(isBlameHeader("author John"))
	t.False(isBlameHeader("summary " + hashA))
	t.False(isBlameHeader("previous " + hashA + " foo.go"))
	t.False(isBlameHeader(hashA))
	t.False(isBlameHeader(hashA + " one two"))
	t.False(isBlameHeader(strings.ToUpper(hashA) + " 1 1"))
}
