package git

import (
	"context"

	"github.com/pkg/errors"
)

var (
	ErrGitNotFound   = errors.New("git executable not found in PATH")
	ErrNotRepository = errors.New("not a git repository")
	ErrBareRepo      = errors.New("bare repository has no working tree")
	ErrBadRevision   = errors.New("unknown revision")
)

// BlameLine is the attribution of one physical line of a file's current
// content: the commit that last touched it and the line text.
type BlameLine struct {
	CommitHash string
	Text       string
}

// Client is the narrow surface of the version control system this tool
// depends on. Tests swap it for a fake so no git binary is needed.
type Client interface {
	// Root returns the absolute path of the working tree toplevel.
	Root() string

	// Name returns the repository name (toplevel directory basename).
	Name() string

	// ResolveRevision resolves a reference (hash, tag, branch, relative
	// ref) to the full canonical commit id.
	ResolveRevision(ref string) (string, error)

	// ListFiles returns all tracked file paths, relative to Root and
	// ordered by path.
	ListFiles() ([]string, error)

	// BlameFile returns one BlameLine per line of the file's current
	// content. Whitespace-only changes do not count as touching a line.
	BlameFile(ctx context.Context, path string) ([]BlameLine, error)
}
