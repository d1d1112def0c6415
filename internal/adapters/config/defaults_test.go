package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herald/internal/adapters/config"
	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/engine/classifier"
)

// TestDefaultRules_Routing classifies representative paths against the
// built-in table and critical set, covering the conjunctive predicates:
// only source files under src/components are component work, named
// documentation files route as doc, and unrecognized files are dropped.
func TestDefaultRules_Routing(t *testing.T) {
	cfg := config.DefaultConfig("/project")
	c := classifier.New(cfg.Rules, cfg.Critical)

	tests := []struct {
		path         string
		wantCategory string
		wantPriority domain.Priority
		wantAgents   []string
	}{
		{"src/components/Button.tsx", "component", domain.High, []string{"component-documenter", "readme-updater"}},
		{"src/components/Button.jsx", "component", domain.High, []string{"component-documenter", "readme-updater"}},
		{"server.js", "api", domain.High, []string{"api-documenter", "readme-updater"}},
		{"src/api/users.ts", "api", domain.High, []string{"api-documenter", "readme-updater"}},
		{".claude/agents/reviewer.md", "agent", domain.Medium, []string{"file-change-analyzer"}},
		{".claude/commands/deploy.md", "command", domain.Medium, []string{"file-change-analyzer"}},
		{"BACKLOG.md", "backlog", domain.Medium, []string{"backlog-manager"}},
		{"CHANGELOG.md", "changelog", domain.Low, []string{"changelog-updater"}},
		{"docs/README.md", "doc", domain.Medium, []string{"readme-updater"}},
		{"CLAUDE.md", "doc", domain.High, []string{"readme-updater"}},
		{"package.json", "config", domain.High, []string{"readme-updater"}},
		{"tsconfig.json", "config", domain.Low, []string{"readme-updater"}},
		{".vscode/tasks.json", "config", domain.Low, []string{"readme-updater"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := c.Classify(tt.path)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCategory, got.Category)
			assert.Equal(t, tt.wantPriority, got.Priority)
			assert.Equal(t, tt.wantAgents, got.Agents)
		})
	}
}

// TestDefaultRules_Dropped pins the paths the table must not recognize:
// non-source files under watched directories and files that only share an
// extension with a recognized name.
func TestDefaultRules_Dropped(t *testing.T) {
	cfg := config.DefaultConfig("/project")
	c := classifier.New(cfg.Rules, cfg.Critical)

	for _, path := range []string{
		"src/components/styles.css",
		"src/components/logo.png",
		"src/api/schema.graphql",
		".claude/agents/notes.txt",
		"app.yaml",
		"settings.json",
		"tasks.json",
		"main.go",
	} {
		assert.Nil(t, c.Classify(path), "path %s must be dropped", path)
	}
}
