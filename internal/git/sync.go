package git

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// Result reports the outcome of a repository sync.
type Result struct {
	// Path is the local checkout directory.
	Path string

	// Stale is set when an existing checkout could not be
	// fast-forwarded; the scan proceeds on whatever state is there.
	Stale bool
}

// Syncer materializes organization repositories under a local working
// directory, one subdirectory per repository.
type Syncer struct {
	org     string
	useSSH  bool
	baseDir string

	// runGit is swapped out in tests.
	runGit func(dir string, args ...string) error
}

// NewSyncer creates a syncer for an organization. Checkouts live
// under ./{org}_repos/.
func NewSyncer(org string, useSSH bool) *Syncer {
	return &Syncer{
		org:     org,
		useSSH:  useSSH,
		baseDir: org + "_repos",
		runGit:  runGit,
	}
}

// BaseDir returns the working directory holding all checkouts.
func (s *Syncer) BaseDir() string {
	return s.baseDir
}

// Sync ensures a local copy of repo. An existing checkout is
// fast-forward pulled; pull failure is non-fatal and surfaces as
// Result.Stale. Otherwise the repository is cloned; clone failure is
// the only error, since without source there is nothing to scan.
func (s *Syncer) Sync(repo string) (*Result, error) {
	path := filepath.Join(s.baseDir, repo)

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		res := &Result{Path: path}
		if err := s.runGit(path, "pull", "--ff-only", "--quiet"); err != nil {
			res.Stale = true
		}
		return res, nil
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create working directory %s: %w", s.baseDir, err)
	}

	if err := s.runGit("", "clone", "--quiet", s.cloneURL(repo), path); err != nil {
		return nil, fmt.Errorf("clone %s: %w", repo, err)
	}

	return &Result{Path: path}, nil
}

// cloneURL builds the HTTPS or SSH remote URL for a repository.
func (s *Syncer) cloneURL(repo string) string {
	if s.useSSH {
		return fmt.Sprintf("git@github.com:%s/%s.git", s.org, repo)
	}
	return fmt.Sprintf("https://github.com/%s/%s.git", s.org, repo)
}

// runGit executes git with the given arguments, optionally inside dir.
// Output is discarded; only the exit status matters to callers.
func runGit(dir string, args ...string) error {
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	cmd := exec.Command("git", args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
