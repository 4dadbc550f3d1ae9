// Package lockfile discovers dependency lockfiles in a checkout and
// matches vulnerability rules against their contents.
package lockfile

import (
	"github.com/ZettaPloom/DepsGuard/internal/rules"
)

// Basenames are the recognized lockfile filenames, one per supported
// npm-ecosystem format.
var Basenames = []string{
	"package-lock.json",
	"npm-shrinkwrap.json",
	"yarn.lock",
	"pnpm-lock.yaml",
}

// Matcher decides whether a rule is present in lockfile content.
// Lockfile formats differ in how name/version pairs are co-located,
// so there is one strategy per style; a rule counts as matched when
// any strategy succeeds on any file. Matching is literal, never
// semantic-version-aware: a rule for 9.0.36 does not match the range
// specifier ^9.0.36.
type Matcher interface {
	// Name returns the strategy name (e.g. "inline", "structured").
	Name() string

	// Match reports whether the rule's package/version pair occurs
	// in the given lockfile content.
	Match(rule rules.Rule, content string) bool
}

// Matchers returns the full strategy set in evaluation order.
func Matchers() []Matcher {
	return []Matcher{
		NewInlineMatcher(),
		NewStructuredMatcher(),
	}
}
