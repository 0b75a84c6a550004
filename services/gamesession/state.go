package gamesession

import (
	"time"

	"chronos-core/internal/content"
	"chronos-core/internal/dialogue"
)

// Resource bounds and costs.
const (
	MaxHP     = 100
	MaxEnergy = 100

	travelEnergyCost   = 20
	temporalEnergyCost = 15

	paradoxDamage = 15
	riskDamage    = 5

	regenAmount = 2
	echoLimit   = 8

	itemDropChance = 0.3
)

// Risk thresholds. These are carried over from the backend's tuning as
// configuration constants, not derived from a formula.
const (
	paradoxRiskThreshold  = 0.65
	shiftingRiskThreshold = 0.4
	damageRiskThreshold   = 0.3
)

// ActionKind selects a PerformAction flow.
type ActionKind string

const (
	ActionAct      ActionKind = "act"
	ActionObserve  ActionKind = "observe"
	ActionTemporal ActionKind = "temporal"
	ActionCustom   ActionKind = "custom"
)

// Item is a collected inventory entry.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Era         string    `json:"era"`
	FoundAt     time.Time `json:"found_at"`
}

type itemTemplate struct {
	Name        string
	Description string
}

// itemTemplates are the three fixed drops rolled after a non-paradox
// command.
var itemTemplates = []itemTemplate{
	{Name: "Temporal Shard", Description: "A crystallized fragment of displaced time. It is warm in every century."},
	{Name: "Chrono Compass Fragment", Description: "A sliver of brass from the first compass. The needle mark still points at moments."},
	{Name: "Echo Lens", Description: "A lens ground from rift glass. Through it, the last eight seconds replay forever."},
}

// Snapshot is the read-only view handed to consumers. All slices are
// copies; mutation happens only through orchestrator operations.
type Snapshot struct {
	SessionID string `json:"session_id"`

	PlayerHP       int `json:"player_hp"`
	MaxHP          int `json:"max_hp"`
	TemporalEnergy int `json:"temporal_energy"`
	MaxEnergy      int `json:"max_energy"`

	CurrentEra   string        `json:"current_era"`
	CurrentScene content.Scene `json:"current_scene"`

	CurrentDialogue  *dialogue.Line  `json:"current_dialogue,omitempty"`
	DialogueQueue    []dialogue.Line `json:"dialogue_queue,omitempty"`
	IsDialogueActive bool            `json:"is_dialogue_active"`

	ButterflyIndex float64  `json:"butterfly_index"`
	IsParadoxEvent bool     `json:"is_paradox_event"`
	AffectedEras   []string `json:"affected_eras,omitempty"`

	TimelineNodes []content.TimelineNode `json:"timeline_nodes"`
	TotalActions  int                    `json:"total_actions"`
	EchoMessages  []string               `json:"echo_messages"`
	Inventory     []Item                 `json:"inventory"`

	IsTransitioning bool `json:"is_transitioning"`
	IsRecalculating bool `json:"is_recalculating"`
	BackendOnline   bool `json:"backend_online"`
}
