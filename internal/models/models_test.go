package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTaskStatus(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := ParseTaskStatus(string(s))
		require.NoError(t, err)
		require.Equal(t, s, got)
	}

	for _, bad := range []string{"", "done", "COMPLETE", "in progress"} {
		_, err := ParseTaskStatus(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestParseTaskPriority(t *testing.T) {
	_, err := ParseTaskPriority("urgent")
	require.NoError(t, err)
	_, err = ParseTaskPriority("critical")
	require.Error(t, err)
}

func TestParseUserRole(t *testing.T) {
	_, err := ParseUserRole("manager")
	require.NoError(t, err)
	_, err = ParseUserRole("owner")
	require.Error(t, err)
}

func TestLabels(t *testing.T) {
	require.Equal(t, "Not started", StatusNotStarted.Label())
	require.Equal(t, "In progress", StatusInProgress.Label())
	require.Equal(t, "Complete", StatusComplete.Label())
	require.Equal(t, "Medium", PriorityMedium.Label())
}

func TestUserName(t *testing.T) {
	u := &User{Username: "alice"}
	require.Equal(t, "alice", u.Name())
	u.DisplayName = "Alice W"
	require.Equal(t, "Alice W", u.Name())
}
