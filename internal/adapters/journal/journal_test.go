package journal_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herald/internal/adapters/journal"
	"go.trai.ch/herald/internal/core/domain"
)

func TestJournal_RecordAppendsOneLinePerEvent(t *testing.T) {
	root := t.TempDir()
	path := domain.DefaultJournalPath(root)
	j := journal.New(path)

	events := []domain.ChangeEvent{
		{
			Path:       domain.NewInternedString("src/components/Button.tsx"),
			Kind:       domain.Modified,
			ObservedAt: time.Now().UTC(),
			Category:   "component",
			Priority:   domain.High,
			Agents:     []string{"component-documenter", "readme-updater"},
		},
		{
			Path:       domain.NewInternedString("docs/setup.md"),
			Kind:       domain.Created,
			ObservedAt: time.Now().UTC(),
			Category:   "doc",
			Priority:   domain.Low,
			Agents:     []string{"readme-updater"},
		},
	}
	for _, event := range events {
		require.NoError(t, j.Record(event))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	var lines []map[string]any
	for scanner.Scan() {
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &decoded))
		lines = append(lines, decoded)
	}
	require.Len(t, lines, 2)

	assert.Equal(t, "src/components/Button.tsx", lines[0]["file"])
	assert.Equal(t, "component", lines[0]["type"])
	assert.Equal(t, "high", lines[0]["priority"])
	assert.Equal(t, "modified", lines[0]["change"])
	assert.Equal(t, []any{"component-documenter", "readme-updater"}, lines[0]["agents"])

	assert.Equal(t, "docs/setup.md", lines[1]["file"])
	assert.Equal(t, "created", lines[1]["change"])
}
