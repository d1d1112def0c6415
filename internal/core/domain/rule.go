package domain

import "time"

// Rule is one entry in the ordered classification table. Rules are evaluated
// top to bottom; the first rule whose predicate matches a path wins.
//
// A rule's predicate is the conjunction of its non-empty fields:
//   - Dirs: the path must contain one of these directory fragments.
//   - Names: the path's base name must equal one of these.
//   - Extensions: the path must end in one of these suffixes.
//
// Directory-scoped rules are listed before name-scoped rules, which are
// listed before extension-only rules, so overlap is resolved by order rather
// than by declared exclusivity.
type Rule struct {
	// Category names the kind of file this rule recognizes, e.g. "component".
	Category string
	// Dirs are directory fragments matched against the slash-separated path.
	Dirs []string
	// Names are exact base names, e.g. "server.js".
	Names []string
	// Extensions are file suffixes including the dot, e.g. ".tsx".
	Extensions []string
	// Priority is the base priority assigned to matching paths.
	Priority Priority
	// Agents are the consumers that receive changes in this category.
	Agents []string
}

// Classification is the result of classifying a path: the matched category,
// the (possibly escalated) priority, and the consumer set.
type Classification struct {
	Category string
	Priority Priority
	Agents   []string
}

// ExecutorConfig describes how to invoke the external workflow executor.
type ExecutorConfig struct {
	// Command is the executable and its leading arguments. The routed
	// context summary is appended as the final argument.
	Command []string
	// Timeout bounds a single invocation.
	Timeout time.Duration
}

// Config is the externally supplied configuration for a watch session.
type Config struct {
	// Root is the directory the session watches recursively.
	Root string
	// Debounce is the minimum time between flushes absent a size trigger.
	Debounce time.Duration
	// BatchSize is the event count that forces an immediate flush.
	BatchSize int
	// Rules is the ordered classification table.
	Rules []Rule
	// Critical are base names whose changes are escalated to High priority
	// regardless of the matched rule's base priority.
	Critical []string
	// Executor configures the live dispatch path.
	Executor ExecutorConfig
}
