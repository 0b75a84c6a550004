package causality

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Paradox risk assigned per intent family when simulating locally.
const (
	mockSaveRisk    = 0.15
	mockDestroyRisk = 0.6
	mockObserveRisk = 0.3

	mockParadoxThreshold = 0.7
	mockSecondaryEra     = "Cyberpunk"
)

// Intent keyword families, matching the synonym sets the backend's
// voice handler recognizes.
var (
	saveKeywords    = []string{"save", "protect", "warn", "help", "rescue", "defend", "shield", "preserve"}
	destroyKeywords = []string{"destroy", "kill", "eliminate", "delete", "erase", "annihilate", "remove"}
)

var intentVibes = map[string]string{
	"save":    "hopeful",
	"destroy": "ominous",
	"observe": "neutral",
}

// ClassifyIntent maps command text to an intent family and its paradox
// risk. Save takes precedence, then destroy; everything else observes.
func ClassifyIntent(command string) (intent string, risk float64) {
	lower := strings.ToLower(command)
	for _, kw := range saveKeywords {
		if strings.Contains(lower, kw) {
			return "save", mockSaveRisk
		}
	}
	for _, kw := range destroyKeywords {
		if strings.Contains(lower, kw) {
			return "destroy", mockDestroyRisk
		}
	}
	return "observe", mockObserveRisk
}

// Mock synthesizes a well-formed command result locally. It is a pure
// function of (command, era): the rest of the session always has a
// valid result to render, whether or not the backend is reachable.
func Mock(command, era string) *CommandResult {
	intent, risk := ClassifyIntent(command)
	index := 50 + risk*20
	isParadox := risk > mockParadoxThreshold

	secondary := mockSecondaryEra
	if strings.EqualFold(era, secondary) {
		secondary = "Digital"
	}
	affected := []string{era, secondary}

	return &CommandResult{
		ActionID: mockActionID(command, era),
		Intent:   intent,
		Vibe:     intentVibes[intent],
		ButterflyEffect: ButterflyEffect{
			SourceAction:     command,
			AffectedEras:     affected,
			ParadoxRisk:      risk,
			NarrativeChanges: mockNarratives(intent, era),
		},
		ButterflyIndex: index,
		EchoMessages: []string{
			fmt.Sprintf("Processing temporal command: %q", command),
			fmt.Sprintf("Scanning %d affected era(s)...", len(affected)),
			"Causality backend unreachable: procedural simulation engaged",
			fmt.Sprintf("Butterfly Index updated: %.1f%%", index),
		},
		IsParadox: isParadox,
		Source:    "mock_simulation",
	}
}

func mockNarratives(intent, era string) []string {
	switch intent {
	case "save":
		return []string{
			fmt.Sprintf("Action in %s: a life is preserved. The timeline shifts.", era),
			"2847 AD: Neo-Kyoto's architecture evolves, brass and organic motifs emerge",
		}
	case "destroy":
		return []string{
			fmt.Sprintf("Action in %s: destruction ripples forward. Stability drops.", era),
			"2847 AD: Neo-Kyoto descends further into dystopia",
		}
	default:
		return []string{
			fmt.Sprintf("Action in %s: the timeline adjusts to accommodate changes", era),
			"Temporal flux detected across 2 eras, recalibrating",
		}
	}
}

// mockActionID derives a stable short id so simulated results stay
// reproducible for the same inputs.
func mockActionID(command, era string) string {
	h := fnv.New32a()
	h.Write([]byte(command))
	h.Write([]byte{0})
	h.Write([]byte(era))
	return fmt.Sprintf("mock-%08x", h.Sum32())
}
