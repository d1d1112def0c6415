package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herald/internal/core/domain"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Priority
		wantErr bool
	}{
		{name: "high", input: "high", want: domain.High},
		{name: "medium", input: "medium", want: domain.Medium},
		{name: "low", input: "low", want: domain.Low},
		{name: "empty defaults to low", input: "", want: domain.Low},
		{name: "unknown", input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, domain.ErrInvalidPriority)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPriority_Max(t *testing.T) {
	assert.Equal(t, domain.High, domain.Low.Max(domain.High))
	assert.Equal(t, domain.High, domain.High.Max(domain.Medium))
	assert.Equal(t, domain.Medium, domain.Medium.Max(domain.Low))
	assert.Equal(t, domain.Low, domain.Low.Max(domain.Low))
}

func TestPriority_Ordering(t *testing.T) {
	// The numeric ordering backs max-severity aggregation in the router.
	assert.True(t, domain.Low < domain.Medium)
	assert.True(t, domain.Medium < domain.High)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "created", domain.Created.String())
	assert.Equal(t, "modified", domain.Modified.String())
	assert.Equal(t, "deleted", domain.Deleted.String())
}

func TestPendingInvocation_JSONFieldNames(t *testing.T) {
	// The queue file is shared with external readers, so the JSON field
	// names are part of the contract.
	inv := domain.PendingInvocation{
		Agent:         "readme-updater",
		Timestamp:     time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC),
		Trigger:       domain.TriggerFileWatcher,
		Prompt:        "2 component files changed",
		Priority:      domain.High,
		AutoTriggered: true,
	}

	data, err := json.Marshal(inv)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "readme-updater", raw["agent"])
	assert.Equal(t, "file-watcher", raw["trigger"])
	assert.Equal(t, "high", raw["priority"])
	assert.Equal(t, true, raw["auto_triggered"])
	assert.Contains(t, raw, "timestamp")
	assert.Contains(t, raw, "prompt")
}

func TestInternedString_RoundTrip(t *testing.T) {
	a := domain.NewInternedString("/project/src/components/Foo.tsx")
	b := domain.NewInternedString("/project/src/components/Foo.tsx")

	assert.Equal(t, a.Value(), b.Value())
	assert.Equal(t, "/project/src/components/Foo.tsx", a.String())

	text, err := a.MarshalText()
	require.NoError(t, err)

	var c domain.InternedString
	require.NoError(t, c.UnmarshalText(text))
	assert.Equal(t, a.Value(), c.Value())
}
