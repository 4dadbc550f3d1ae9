package lockfile

import (
	"regexp"

	"github.com/ZettaPloom/DepsGuard/internal/rules"
)

// InlineMatcher handles formats that encode name@version tokens on a
// single line (yarn.lock, pnpm-lock.yaml).
type InlineMatcher struct{}

// NewInlineMatcher creates the inline strategy.
func NewInlineMatcher() *InlineMatcher {
	return &InlineMatcher{}
}

// Name returns the strategy name.
func (m *InlineMatcher) Name() string {
	return "inline"
}

// Match reports whether a single line contains the package token
// immediately followed by "@" and a version string containing the
// target version. The match is on the literal rule string, so scoped
// names with an internal "@" need no special casing. A trailing
// boundary keeps a rule for 9.0.3 from matching 9.0.36.
func (m *InlineMatcher) Match(rule rules.Rule, content string) bool {
	return inlinePattern(rule).MatchString(content)
}

// inlinePattern builds the per-rule regexp:
// pkg@<non-space prefix>version<not a version character>.
func inlinePattern(rule rules.Rule) *regexp.Regexp {
	return regexp.MustCompile(
		regexp.QuoteMeta(rule.Package) +
			`@[^\s"']*` +
			regexp.QuoteMeta(rule.Version) +
			`(?:[^0-9A-Za-z.-]|$)`)
}
