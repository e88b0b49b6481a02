package shortcut_test

import (
	"testing"

	"github.com/madisonbullard/mcp-server-shortcut/shortcut"
	"github.com/stretchr/testify/assert"
)

func Test_RefLabel(t *testing.T) {
	var ref *shortcut.Ref
	assert.Equal(t, shortcut.NoneLabel, ref.Label())
	assert.Equal(t, shortcut.NoneLabel, (&shortcut.Ref{}).Label())
	assert.Equal(t, "123", (&shortcut.Ref{ID: "123"}).Label())
	assert.Equal(t, "Core", (&shortcut.Ref{ID: "123", Name: "Core"}).Label())
}

func Test_StoryState(t *testing.T) {
	assert.Equal(t, shortcut.StateNotStarted, (&shortcut.Story{}).State())
	assert.Equal(t, shortcut.StateInProgress, (&shortcut.Story{Started: true}).State())
	assert.Equal(t, shortcut.StateCompleted, (&shortcut.Story{Started: true, Completed: true}).State())
}

func Test_IterationStatus(t *testing.T) {
	tcases := []struct {
		status    shortcut.IterationStatus
		completed bool
		started   bool
	}{
		{shortcut.IterationStatusCompleted, true, false},
		{shortcut.IterationStatusStarted, false, true},
		{shortcut.IterationStatusUnstarted, false, false},
		{"", false, false},
	}
	for _, tc := range tcases {
		it := &shortcut.Iteration{Status: tc.status}
		assert.Equal(t, tc.completed, it.IsCompleted(), string(tc.status))
		assert.Equal(t, tc.started, it.IsStarted(), string(tc.status))
	}
}

func Test_MemberMention(t *testing.T) {
	m := &shortcut.Member{MentionName: "jane"}
	assert.Equal(t, "@jane", m.Mention())
}
