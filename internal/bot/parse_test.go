package bot

import (
	"testing"

	"task-manager-bot/internal/errs"

	"github.com/stretchr/testify/require"
)

func TestParseSubAction(t *testing.T) {
	action, args := ParseSubAction("complete 12")
	require.Equal(t, "complete", action)
	require.Equal(t, []string{"12"}, args)

	action, args = ParseSubAction("  COMMENT   7   needs   review  ")
	require.Equal(t, "comment", action)
	require.Equal(t, []string{"7", "needs", "review"}, args)

	action, args = ParseSubAction("")
	require.Equal(t, "help", action)
	require.Empty(t, args)
}

func TestParseTaskID(t *testing.T) {
	id, err := ParseTaskID("42")
	require.NoError(t, err)
	require.Equal(t, uint(42), id)

	for _, bad := range []string{"", "abc", "-1", "0", "1.5"} {
		_, err := ParseTaskID(bad)
		require.Error(t, err, "input %q", bad)
		require.True(t, errs.IsValidation(err))
	}
}

func TestParseTaskAction(t *testing.T) {
	op, id, err := ParseTaskAction("complete_task_12")
	require.NoError(t, err)
	require.Equal(t, "complete_task", op)
	require.Equal(t, uint(12), id)

	op, id, err = ParseTaskAction("set_in_progress_task_3")
	require.NoError(t, err)
	require.Equal(t, "set_in_progress_task", op)
	require.Equal(t, uint(3), id)

	for _, bad := range []string{"", "nounderscore", "op_", "op_x", "_12"} {
		_, _, err := ParseTaskAction(bad)
		require.Error(t, err, "input %q", bad)
	}
}

func TestParseCreateForm(t *testing.T) {
	form, err := ParseCreateForm(FormValues{
		FieldTitle:       "  Restock masks ",
		FieldDescription: "Room 3",
		FieldAssignee:    "U123",
		FieldPriority:    "high",
	})
	require.NoError(t, err)
	require.Equal(t, "Restock masks", form.Title)
	require.Equal(t, "Room 3", form.Description)
	require.Equal(t, "U123", form.AssigneeSlackID)
	require.Equal(t, "high", form.Priority)

	_, err = ParseCreateForm(FormValues{FieldTitle: "   "})
	require.True(t, errs.IsValidation(err))
}
