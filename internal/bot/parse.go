// Package bot contains the pure parsing of inbound platform payloads:
// slash-command text, interactive-action values, and form submissions.
package bot

import (
	"fmt"
	"strconv"
	"strings"

	"task-manager-bot/internal/errs"
)

// ParseSubAction splits slash-command text into a lowercased sub-action and
// its remaining arguments. Empty text means "help".
func ParseSubAction(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "help", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// ParseTaskID parses a numeric task id argument.
func ParseTaskID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil || id == 0 {
		return 0, &errs.ValidationError{Field: "task id", Reason: fmt.Sprintf("%q is not a valid task id", s)}
	}
	return uint(id), nil
}

// ParseTaskAction decodes a composite action value of the form
// "<operation>_task_<id>", e.g. "complete_task_12".
func ParseTaskAction(value string) (op string, taskID uint, err error) {
	idx := strings.LastIndex(value, "_")
	if idx <= 0 || idx == len(value)-1 {
		return "", 0, &errs.ValidationError{Field: "action", Reason: fmt.Sprintf("malformed action value %q", value)}
	}
	taskID, err = ParseTaskID(value[idx+1:])
	if err != nil {
		return "", 0, err
	}
	return value[:idx], taskID, nil
}

// FormValues is a flat mapping of form field names to submitted values.
type FormValues map[string]string

// Field names of the task-creation form.
const (
	FieldTitle       = "task_title"
	FieldDescription = "task_description"
	FieldAssignee    = "task_assignee"
	FieldPriority    = "task_priority"
)

// CreateForm is the decoded task-creation submission. AssigneeSlackID is the
// platform id picked in the user select, empty when none was chosen.
type CreateForm struct {
	Title           string
	Description     string
	AssigneeSlackID string
	Priority        string
}

// ParseCreateForm pulls the task-creation fields out of a form submission.
func ParseCreateForm(v FormValues) (CreateForm, error) {
	form := CreateForm{
		Title:           strings.TrimSpace(v[FieldTitle]),
		Description:     strings.TrimSpace(v[FieldDescription]),
		AssigneeSlackID: strings.TrimSpace(v[FieldAssignee]),
		Priority:        strings.TrimSpace(v[FieldPriority]),
	}
	if form.Title == "" {
		return CreateForm{}, &errs.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	return form, nil
}
