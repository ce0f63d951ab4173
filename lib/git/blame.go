package git

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/abiosoft/lineprefix"
	"github.com/pkg/errors"
)

// BlameFile shells out to `git blame -w --porcelain`. The -w flag makes git
// attribute a line to the commit before a whitespace-only change, so
// reformatting does not count as evolution.
func (c *client) BlameFile(ctx context.Context, path string) ([]BlameLine, error) {
	cmd := exec.CommandContext(ctx, c.gitExe, "blame", "-w", "--porcelain", "--", path)
	cmd.Dir = c.rootDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout

	if c.options.Verbose {
		cmd.Stderr = lineprefix.New(lineprefix.Writer(c.options.GitOutput), lineprefix.Prefix("git:"))
	} else {
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, errors.Errorf("git blame %v: %v", path, msg)
	}

	return parseBlamePorcelain(stdout.Bytes())
}

// parseBlamePorcelain reads the porcelain stream: each content line (prefixed
// by a tab) belongs to the commit announced by the closest preceding header
// line. Headers carry the full 40-hex id, so no short-prefix matching is
// needed when comparing against the base commit.
func parseBlamePorcelain(out []byte) ([]BlameLine, error) {
	var lines []BlameLine
	current := ""

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "\t"):
			if current == "" {
				return nil, errors.Errorf("content line before any blame header: %q", line)
			}
			lines = append(lines, BlameLine{CommitHash: current, Text: line[1:]})

		case isBlameHeader(line):
			current = line[:40]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// isBlameHeader matches "<40-hex> <orig-line> <final-line>[ <group-size>]".
// Metadata lines (author, summary, filename, previous, ...) start with a
// keyword and never look like this.
func isBlameHeader(line string) bool {
	if len(line) < 44 || line[40] != ' ' {
		return false
	}

	for i := 0; i < 40; i++ {
		c := line[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	rest := strings.Fields(line[41:])
	if len(rest) < 2 {
		return false
	}
	for _, f := range rest {
		if !isDigits(f) {
			return false
		}
	}

	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
