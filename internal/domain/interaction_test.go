package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestNewInteractionRecord(t *testing.T) {
	rec, err := NewInteractionRecord(1, "session-a", SwipeRight, intPtr(10), intPtr(50), intPtr(0))
	require.NoError(t, err)
	assert.Equal(t, 1, rec.ProfileID)
	assert.Equal(t, SwipeRight, rec.Action)
	assert.Equal(t, 10, rec.TimeSpent)
	assert.Equal(t, 50, rec.ScrollDepth)
	require.NotNil(t, rec.ImageIndex)
	assert.Equal(t, 0, *rec.ImageIndex)
}

func TestNewInteractionRecordOptionalImageIndex(t *testing.T) {
	rec, err := NewInteractionRecord(1, "session-a", SwipeLeft, intPtr(0), intPtr(0), nil)
	require.NoError(t, err)
	assert.Nil(t, rec.ImageIndex)
}

func TestNewInteractionRecordValidation(t *testing.T) {
	tests := []struct {
		name          string
		action        SwipeAction
		viewerSession string
		timeSpent     *int
		scrollDepth   *int
		wantField     string
	}{
		{"unknown action", "super_like", "s", intPtr(1), intPtr(1), "action"},
		{"empty action", "", "s", intPtr(1), intPtr(1), "action"},
		{"empty session", SwipeRight, "", intPtr(1), intPtr(1), "viewer_session"},
		{"missing time", SwipeRight, "s", nil, intPtr(1), "time_spent"},
		{"negative time", SwipeRight, "s", intPtr(-1), intPtr(1), "time_spent"},
		{"missing depth", SwipeRight, "s", intPtr(1), nil, "scroll_depth"},
		{"depth below range", SwipeRight, "s", intPtr(1), intPtr(-1), "scroll_depth"},
		{"depth above range", SwipeRight, "s", intPtr(1), intPtr(101), "scroll_depth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := NewInteractionRecord(1, tt.viewerSession, tt.action, tt.timeSpent, tt.scrollDepth, nil)
			assert.Nil(t, rec)
			require.Error(t, err)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestSwipeActionValid(t *testing.T) {
	assert.True(t, SwipeRight.Valid())
	assert.True(t, SwipeLeft.Valid())
	assert.False(t, SwipeAction("view").Valid())
	assert.False(t, SwipeAction("").Valid())
}
