// Package notify builds the structured message payloads sent back to the
// messaging platform. Builders are pure; delivery goes through Messenger.
package notify

// Text object types understood by the platform renderer.
const (
	TextMarkdown = "mrkdwn"
	TextPlain    = "plain_text"
)

// Action identifiers embedded in interactive elements. The element value
// carries the operation plus the task id (e.g. "complete_task_12").
const (
	ActionAcceptTask   = "accept_task"
	ActionCompleteTask = "complete_task"
	ActionUpdateStatus = "update_status"
	ActionAddComment   = "add_comment"
	ActionAskQuestion  = "ask_question"
	ActionSetStatus    = "set_status"
	ActionOverflowMenu = "task_overflow_menu"
	ActionCreateTask   = "create_task_button"
	ActionViewMyTasks  = "view_my_tasks"
)

// TextObject is a renderable piece of text.
type TextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Option is one entry of an overflow or select element.
type Option struct {
	Text  TextObject `json:"text"`
	Value string     `json:"value"`
}

// Element is an interactive component: a button or an overflow menu.
type Element struct {
	Type     string      `json:"type"`
	Text     *TextObject `json:"text,omitempty"`
	Style    string      `json:"style,omitempty"`
	ActionID string      `json:"action_id,omitempty"`
	Value    string      `json:"value,omitempty"`
	Options  []Option    `json:"options,omitempty"`
}

// Block is one display block of a message: header, section, actions,
// or divider.
type Block struct {
	Type      string       `json:"type"`
	Text      *TextObject  `json:"text,omitempty"`
	Fields    []TextObject `json:"fields,omitempty"`
	Elements  []Element    `json:"elements,omitempty"`
	Accessory *Element     `json:"accessory,omitempty"`
}

// Message is the outbound payload: a plain-text summary plus an ordered
// sequence of display blocks.
type Message struct {
	Text   string  `json:"text"`
	Blocks []Block `json:"blocks,omitempty"`
}

func markdown(text string) *TextObject {
	return &TextObject{Type: TextMarkdown, Text: text}
}

func plain(text string) TextObject {
	return TextObject{Type: TextPlain, Text: text}
}

func header(text string) Block {
	t := plain(text)
	return Block{Type: "header", Text: &t}
}

func section(text string) Block {
	return Block{Type: "section", Text: markdown(text)}
}

func divider() Block {
	return Block{Type: "divider"}
}

func button(label, actionID, value, style string) Element {
	t := plain(label)
	return Element{Type: "button", Text: &t, ActionID: actionID, Value: value, Style: style}
}
