package config

import (
	"time"

	"go.trai.ch/herald/internal/core/domain"
)

const (
	// DefaultDebounce is the debounce window used when none is configured.
	DefaultDebounce = 15 * time.Second
	// DefaultBatchSize is the batch-size ceiling used when none is configured.
	DefaultBatchSize = 5
	// DefaultExecutorTimeout bounds one workflow invocation.
	DefaultExecutorTimeout = 3 * time.Minute
)

// defaultExecutorCommand invokes the agent workflow runner; the context
// summary is appended as the final argument.
func defaultExecutorCommand() []string {
	return []string{"claude", "/microagent", "--context"}
}

// defaultCritical are base names that escalate any matching path to High
// regardless of its rule's priority.
func defaultCritical() []string {
	return []string{"CLAUDE.md", "package.json", "server.js"}
}

// defaultRules is the built-in routing table. Directory-scoped categories
// come before name-scoped ones. A rule's groups are conjunctive, so the
// component and api rules only recognize source files under their
// directories; a stylesheet or image in src/components matches nothing and
// src/components/README.md falls through to the doc rule.
func defaultRules() []domain.Rule {
	return []domain.Rule{
		{
			Category:   "component",
			Dirs:       []string{"src/components"},
			Extensions: []string{".tsx", ".ts", ".jsx", ".js"},
			Priority:   domain.High,
			Agents:     []string{"component-documenter", "readme-updater"},
		},
		{
			Category: "api",
			Names:    []string{"server.js"},
			Priority: domain.High,
			Agents:   []string{"api-documenter", "readme-updater"},
		},
		{
			Category:   "api",
			Dirs:       []string{"src/api"},
			Extensions: []string{".js", ".ts"},
			Priority:   domain.High,
			Agents:     []string{"api-documenter", "readme-updater"},
		},
		{
			Category:   "agent",
			Dirs:       []string{".claude/agents"},
			Extensions: []string{".md"},
			Priority:   domain.Medium,
			Agents:     []string{"file-change-analyzer"},
		},
		{
			Category:   "command",
			Dirs:       []string{".claude/commands"},
			Extensions: []string{".md"},
			Priority:   domain.Medium,
			Agents:     []string{"file-change-analyzer"},
		},
		{
			Category: "backlog",
			Names:    []string{"BACKLOG.md"},
			Priority: domain.Medium,
			Agents:   []string{"backlog-manager"},
		},
		{
			Category: "changelog",
			Names:    []string{"CHANGELOG.md"},
			Priority: domain.Low,
			Agents:   []string{"changelog-updater"},
		},
		{
			Category: "doc",
			Names:    []string{"README.md", "CLAUDE.md", "PROCESS.md"},
			Priority: domain.Medium,
			Agents:   []string{"readme-updater"},
		},
		{
			Category: "config",
			Names:    []string{"package.json", "tsconfig.json"},
			Priority: domain.Low,
			Agents:   []string{"readme-updater"},
		},
		{
			Category: "config",
			Dirs:     []string{".vscode"},
			Names:    []string{"tasks.json"},
			Priority: domain.Low,
			Agents:   []string{"readme-updater"},
		},
	}
}

// DefaultConfig returns the configuration used when no herald.yaml exists.
func DefaultConfig(root string) *domain.Config {
	return &domain.Config{
		Root:      root,
		Debounce:  DefaultDebounce,
		BatchSize: DefaultBatchSize,
		Rules:     defaultRules(),
		Critical:  defaultCritical(),
		Executor: domain.ExecutorConfig{
			Command: defaultExecutorCommand(),
			Timeout: DefaultExecutorTimeout,
		},
	}
}
