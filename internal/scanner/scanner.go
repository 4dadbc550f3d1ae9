// Package scanner runs the per-repository scan pipeline: sync a local
// copy, discover lockfiles, and match every vulnerability rule
// against them.
package scanner

import (
	"os"
	"sync"

	"github.com/ZettaPloom/DepsGuard/internal/git"
	"github.com/ZettaPloom/DepsGuard/internal/lockfile"
	"github.com/ZettaPloom/DepsGuard/internal/rules"
)

// Syncer materializes a repository locally. *git.Syncer implements it.
type Syncer interface {
	Sync(repo string) (*git.Result, error)
}

// Match records one rule found in one lockfile.
type Match struct {
	Rule     rules.Rule
	File     string
	Strategy string
}

// Result is the per-repository scan outcome.
type Result struct {
	Repo      string
	Matches   []Match
	Lockfiles int

	// Stale is set when the checkout could not be fast-forwarded
	// and was scanned as-is.
	Stale bool

	// Err is set only when the repository could not be synced at
	// all; every other condition is a soft outcome.
	Err error
}

// Matched reports whether any rule matched.
func (r Result) Matched() bool {
	return len(r.Matches) > 0
}

// Scanner drives the pipeline for one repository at a time. Instances
// are safe for concurrent use by ScanAll workers: all fields are set
// at construction and never mutated.
type Scanner struct {
	syncer   Syncer
	rules    []rules.Rule
	matchers []lockfile.Matcher

	// discover and readFile are swapped out in tests.
	discover func(root string) ([]string, error)
	readFile func(path string) ([]byte, error)
}

// New creates a scanner for the given rule set.
func New(syncer Syncer, ruleSet []rules.Rule) *Scanner {
	return &Scanner{
		syncer:   syncer,
		rules:    ruleSet,
		matchers: lockfile.Matchers(),
		discover: lockfile.Discover,
		readFile: os.ReadFile,
	}
}

// Scan runs the pipeline for one repository. Only a failed sync
// produces Result.Err — a repository without source cannot be
// scanned. Missing lockfiles and non-matching rules are reported in
// the Result, never as errors.
func (s *Scanner) Scan(repo string) Result {
	res := Result{Repo: repo}

	synced, err := s.syncer.Sync(repo)
	if err != nil {
		res.Err = err
		return res
	}
	res.Stale = synced.Stale

	files, err := s.discover(synced.Path)
	if err != nil || len(files) == 0 {
		return res
	}
	res.Lockfiles = len(files)

	for _, file := range files {
		content, err := s.readFile(file)
		if err != nil {
			continue
		}
		text := string(content)
		for _, rule := range s.rules {
			for _, m := range s.matchers {
				if m.Match(rule, text) {
					res.Matches = append(res.Matches, Match{
						Rule:     rule,
						File:     file,
						Strategy: m.Name(),
					})
					break
				}
			}
		}
	}

	return res
}

// ScanAll scans repositories with a bounded worker pool; workers <= 1
// reproduces fully sequential processing. One repository's failure
// never tears down the loop. Results are delivered to report from a
// single goroutine, in completion order, so output is never
// interleaved.
func (s *Scanner) ScanAll(repos []string, workers int, report func(Result)) {
	if workers > len(repos) {
		workers = len(repos)
	}

	if workers <= 1 {
		for _, repo := range repos {
			report(s.Scan(repo))
		}
		return
	}

	jobs := make(chan string)
	results := make(chan Result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for repo := range jobs {
				results <- s.Scan(repo)
			}
		}()
	}

	go func() {
		for _, repo := range repos {
			jobs <- repo
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	for r := range results {
		report(r)
	}
}
