package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressionState_NextBadgeID(t *testing.T) {
	tests := []struct {
		name           string
		completedCount int64
		maxBadgeID     int64
		want           *int64
	}{
		{"first completion awards badge 1", 0, 3, int64Ptr(1)},
		{"second completion awards badge 2", 1, 3, int64Ptr(2)},
		{"third completion awards badge 3", 2, 3, int64Ptr(3)},
		{"sequence exhausted", 3, 3, nil},
		{"far past the catalog", 10, 3, nil},
		{"empty catalog never awards", 0, 0, nil},
		{"single badge catalog bootstrap", 0, 1, int64Ptr(1)},
		{"single badge catalog exhausted", 1, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := ProgressionState{CompletedCount: tt.completedCount}
			got := state.NextBadgeID(tt.maxBadgeID)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestProgressionState_SequenceOverCompletions(t *testing.T) {
	// Replaying a user's history: with a three-badge catalog, four
	// completions award 1, 2, 3 and then nothing.
	var awarded []*int64
	for count := int64(0); count < 4; count++ {
		awarded = append(awarded, ProgressionState{CompletedCount: count}.NextBadgeID(3))
	}

	require.Len(t, awarded, 4)
	assert.Equal(t, int64(1), *awarded[0])
	assert.Equal(t, int64(2), *awarded[1])
	assert.Equal(t, int64(3), *awarded[2])
	assert.Nil(t, awarded[3])
}

func TestUser_IsDeleted(t *testing.T) {
	u := &User{}
	assert.False(t, u.IsDeleted())

	now := time.Now()
	u.DeletedAt = &now
	assert.True(t, u.IsDeleted())
}

func int64Ptr(v int64) *int64 { return &v }
