// Package classifier maps changed paths to categories, priorities, and
// consumer sets using an ordered rule table.
package classifier

import (
	"path/filepath"
	"strings"

	"go.trai.ch/herald/internal/core/domain"
)

// Classifier evaluates the classification rule table. It is a pure function
// of the path and its table: no I/O, no state mutation, deterministic.
type Classifier struct {
	rules    []domain.Rule
	critical map[string]struct{}
}

// New creates a Classifier from an ordered rule table and a set of critical
// base names that escalate priority regardless of the matched rule.
func New(rules []domain.Rule, critical []string) *Classifier {
	criticalSet := make(map[string]struct{}, len(critical))
	for _, name := range critical {
		criticalSet[name] = struct{}{}
	}
	return &Classifier{
		rules:    rules,
		critical: criticalSet,
	}
}

// Classify returns the classification for a path, or nil when no rule
// matches. A nil result is not an error: unmatched paths are simply outside
// the domain of interest.
func (c *Classifier) Classify(path string) *domain.Classification {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)

	for i := range c.rules {
		rule := &c.rules[i]
		if !matches(rule, slashed, base) {
			continue
		}

		priority := rule.Priority
		if _, ok := c.critical[base]; ok {
			priority = priority.Max(domain.High)
		}

		return &domain.Classification{
			Category: rule.Category,
			Priority: priority,
			Agents:   rule.Agents,
		}
	}

	return nil
}

// matches reports whether the rule's predicate holds for the path. The
// predicate is the conjunction of the rule's non-empty groups: a rule that
// lists directories and extensions only matches paths satisfying both. A
// rule with no groups at all matches nothing.
func matches(rule *domain.Rule, slashed, base string) bool {
	if len(rule.Dirs) > 0 && !matchesDir(rule.Dirs, slashed) {
		return false
	}
	if len(rule.Names) > 0 && !matchesName(rule.Names, base) {
		return false
	}
	if len(rule.Extensions) > 0 && !matchesExtension(rule.Extensions, base) {
		return false
	}
	return len(rule.Dirs) > 0 || len(rule.Names) > 0 || len(rule.Extensions) > 0
}

// matchesDir reports whether any fragment appears in the path on segment
// boundaries, e.g. "src/components" matches "a/src/components/Foo.tsx" but
// not "a/xsrc/componentsx/Foo.tsx".
func matchesDir(fragments []string, slashed string) bool {
	for _, fragment := range fragments {
		fragment = strings.Trim(filepath.ToSlash(fragment), "/")
		if fragment == "" {
			continue
		}
		if strings.HasPrefix(slashed, fragment+"/") || strings.Contains(slashed, "/"+fragment+"/") {
			return true
		}
	}
	return false
}

func matchesName(names []string, base string) bool {
	for _, name := range names {
		if base == name {
			return true
		}
	}
	return false
}

func matchesExtension(extensions []string, base string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}
