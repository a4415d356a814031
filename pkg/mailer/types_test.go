package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		personal string
		email    string
		want     string
	}{
		{"with name", "Robin Hale", "robin@example.com", "Robin Hale <robin@example.com>"},
		{"without name", "", "robin@example.com", "robin@example.com"},
		{"whitespace name is kept verbatim", "   ", "robin@example.com", "    <robin@example.com>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Recipient(tt.personal, tt.email))
		})
	}
}

func TestSimpleTags(t *testing.T) {
	t.Parallel()

	tags := SimpleTags("reminder", "daily")

	require.Len(t, tags, 2)
	assert.Equal(t, struct{}{}, tags["reminder"])
	assert.Equal(t, struct{}{}, tags["daily"])

	empty := SimpleTags()
	require.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestTags_MixPresenceAndKeyValue(t *testing.T) {
	t.Parallel()

	tags := SimpleTags("reminder")
	tags["campaign"] = "daily-journal"
	tags["priority"] = 1

	require.Len(t, tags, 3)
	assert.Equal(t, struct{}{}, tags["reminder"])
	assert.Equal(t, "daily-journal", tags["campaign"])
	assert.Equal(t, 1, tags["priority"])
}
