package git

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pkg/errors"

	"github.com/gitevolve/evolve/lib/utils"
)

type ClientOptions struct {
	// Verbose streams git's stderr to GitOutput instead of swallowing it.
	Verbose   bool
	GitOutput io.Writer
}

type client struct {
	gitExe  string
	repo    *git.Repository
	rootDir string
	name    string
	options ClientOptions
}

func NewClient(dir string, options *ClientOptions) (Client, error) {
	if options == nil {
		options = &ClientOptions{}
	}
	if options.GitOutput == nil {
		options.GitOutput = os.Stderr
	}

	gitExe, err := exec.LookPath("git")
	if err != nil {
		return nil, ErrGitNotFound
	}

	dir, err = utils.PathAbs(dir)
	if err != nil {
		return nil, err
	}

	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err == git.ErrRepositoryNotExists {
		return nil, errors.Wrapf(ErrNotRepository, "%v", dir)
	}
	if err != nil {
		return nil, err
	}

	wt, err := repo.Worktree()
	if err == git.ErrIsBareRepository {
		return nil, errors.Wrapf(ErrBareRepo, "%v", dir)
	}
	if err != nil {
		return nil, err
	}

	rootDir := wt.Filesystem.Root()

	return &client{
		gitExe:  gitExe,
		repo:    repo,
		rootDir: rootDir,
		name:    filepath.Base(rootDir),
		options: *options,
	}, nil
}

func (c *client) Root() string {
	return c.rootDir
}

func (c *client) Name() string {
	return c.name
}

func (c *client) ResolveRevision(ref string) (string, error) {
	hash, err := c.repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", errors.Wrapf(ErrBadRevision, "%v", ref)
	}

	return hash.String(), nil
}

func (c *client) ListFiles() ([]string, error) {
	head, err := c.repo.Head()
	if err == plumbing.ErrReferenceNotFound {
		// No commits yet means no tracked content to compare.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	commit, err := c.repo.CommitObject(head.Hash())
	if err != nil {
		return nil, err
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, err
	}

	var result []string

	err = tree.Files().ForEach(func(file *object.File) error {
		result = append(result, file.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result)

	return result, nil
}
