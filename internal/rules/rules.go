// Package rules loads vulnerability rules from a keyword file.
package rules

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Rule is a single (package, exact version) pair to search for.
type Rule struct {
	Package string
	Version string
}

// String returns the rule in pkg@version form.
func (r Rule) String() string {
	return r.Package + "@" + r.Version
}

// Load reads a rules file and expands every line into rules.
// Each line has the form "pkg@v1,v2,v3". Blank lines are skipped.
// A file that yields zero rules is an error: scanning with an empty
// rule set would report every repository as clean.
func Load(path string) ([]Rule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rules file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var all []Rule
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		all = append(all, ExpandLine(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("rules file %s contains no rules", path)
	}

	return all, nil
}

// ExpandLine expands one raw line "pkg@v1,v2,v3" into one Rule per
// non-blank version token. Package names may themselves contain "@"
// (scoped npm names like @scope/name), so the split happens on the
// last "@" in the line. Blank version tokens are dropped silently;
// a line with an empty package or no versions yields no rules.
func ExpandLine(line string) []Rule {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	at := strings.LastIndex(line, "@")
	if at <= 0 {
		// No separator, or nothing before it (a bare "@versions" line).
		return nil
	}

	pkg := strings.TrimSpace(line[:at])
	if pkg == "" {
		return nil
	}

	var rules []Rule
	for _, v := range strings.Split(line[at+1:], ",") {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		rules = append(rules, Rule{Package: pkg, Version: v})
	}

	return rules
}
