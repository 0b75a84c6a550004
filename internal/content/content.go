// Package content holds the static narrative content the session core
// consumes: the scene registry, the default timeline, and the canned
// dialogue tables. Content ships builtin and can be overridden from an
// object store.
package content

import (
	"chronos-core/internal/dialogue"
)

// Timeline node stability statuses.
const (
	NodeStable   = "stable"
	NodeShifting = "shifting"
	NodeParadox  = "paradox"
)

// NPC is a character the player can talk to within a scene.
type NPC struct {
	ID    string          `yaml:"id" json:"id"`
	Name  string          `yaml:"name" json:"name"`
	Role  string          `yaml:"role,omitempty" json:"role,omitempty"`
	Lines []dialogue.Line `yaml:"lines" json:"lines"`
}

// Hotspot is an interactive point within a scene. Interacting emits an
// echo log line in addition to its dialogue.
type Hotspot struct {
	ID    string          `yaml:"id" json:"id"`
	Name  string          `yaml:"name" json:"name"`
	Echo  string          `yaml:"echo,omitempty" json:"echo,omitempty"`
	Lines []dialogue.Line `yaml:"lines" json:"lines"`
}

// Scene is one era's static presentation record.
type Scene struct {
	ID          string    `yaml:"id" json:"id"`
	Era         string    `yaml:"era" json:"era"`
	Year        int       `yaml:"year" json:"year"`
	Background  string    `yaml:"background" json:"background"`
	Description string    `yaml:"description" json:"description"`
	Ambience    string    `yaml:"ambience" json:"ambience"`
	Faction     string    `yaml:"faction,omitempty" json:"faction,omitempty"`
	NPCs        []NPC     `yaml:"npcs,omitempty" json:"npcs,omitempty"`
	Hotspots    []Hotspot `yaml:"hotspots,omitempty" json:"hotspots,omitempty"`
}

// TimelineNode is one anchor point on the session timeline.
type TimelineNode struct {
	ID          string `yaml:"id" json:"id"`
	Year        int    `yaml:"year" json:"year"`
	Era         string `yaml:"era" json:"era"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Status      string `yaml:"status" json:"status"`
	Unlocked    bool   `yaml:"unlocked" json:"unlocked"`
}
