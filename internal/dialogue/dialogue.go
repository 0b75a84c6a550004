// Package dialogue implements the one-line-at-a-time dialogue queue used
// by the game session.
package dialogue

// ActionKind discriminates what selecting a choice does.
type ActionKind string

const (
	// ActionNarrative plays a canned response sequence keyed by Action.Key.
	ActionNarrative ActionKind = "narrative"
	// ActionCommand routes Action.Command to the causality backend.
	ActionCommand ActionKind = "command"
)

// Action is the tagged union behind a dialogue choice.
type Action struct {
	Kind    ActionKind `json:"kind" yaml:"kind"`
	Key     string     `json:"key,omitempty" yaml:"key,omitempty"`
	Command string     `json:"command,omitempty" yaml:"command,omitempty"`
}

// Narrative builds a narrative action.
func Narrative(key string) Action {
	return Action{Kind: ActionNarrative, Key: key}
}

// Command builds a command action.
func Command(text string) Action {
	return Action{Kind: ActionCommand, Command: text}
}

// Choice is one selectable option attached to a dialogue line.
type Choice struct {
	Label  string `json:"label" yaml:"label"`
	Action Action `json:"action" yaml:"action"`
}

// Line is a single dialogue entry. Speaker may be empty for narration.
// Lines are immutable once constructed.
type Line struct {
	Speaker   string   `json:"speaker" yaml:"speaker"`
	Text      string   `json:"text" yaml:"text"`
	Narration bool     `json:"narration,omitempty" yaml:"narration,omitempty"`
	Choices   []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
}

// Say builds a spoken line.
func Say(speaker, text string) Line {
	return Line{Speaker: speaker, Text: text}
}

// Narrate builds a narration line.
func Narrate(text string) Line {
	return Line{Text: text, Narration: true}
}
