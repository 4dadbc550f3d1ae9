package lockfile

import (
	"strings"

	"github.com/ZettaPloom/DepsGuard/internal/rules"
)

// StructuredMatcher handles formats with separate name/version JSON
// fields (package-lock.json, npm-shrinkwrap.json), where the package
// name and its resolved version sit on adjacent lines.
type StructuredMatcher struct{}

// NewStructuredMatcher creates the structured strategy.
func NewStructuredMatcher() *StructuredMatcher {
	return &StructuredMatcher{}
}

// Name returns the strategy name.
func (m *StructuredMatcher) Name() string {
	return "structured"
}

// Match reports whether the quoted package name appears on a line
// with a `"version": "<target>"` line at most one line above or
// below it.
func (m *StructuredMatcher) Match(rule rules.Rule, content string) bool {
	lines := strings.Split(content, "\n")
	name := `"` + rule.Package + `"`
	version := `"version": "` + rule.Version + `"`

	for i, line := range lines {
		if !strings.Contains(line, name) {
			continue
		}
		for j := max(0, i-1); j <= min(len(lines)-1, i+1); j++ {
			if strings.Contains(lines[j], version) {
				return true
			}
		}
	}

	return false
}
