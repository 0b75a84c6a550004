package content

import (
	"chronos-core/internal/dialogue"
)

// actSequences are the canned "act" flows per era. Each ends in a
// choice set whose options route to the causality backend. Eras without
// an entry fall back to the default era's flow.
func actSequences() map[string][]dialogue.Line {
	return map[string][]dialogue.Line{
		"renaissance": {
			dialogue.Narrate("The workshop is quiet. Leonardo's sketches cover every surface; any one of them could change the centuries ahead."),
			{
				Speaker: "Chronos Interface",
				Text:    "Intervention window open. Choose your action in this era.",
				Choices: []dialogue.Choice{
					{Label: "Warn Leonardo about the Medici", Action: dialogue.Command("Warn Leonardo about the Medici spies")},
					{Label: "Hide the Chronos blueprints", Action: dialogue.Command("Hide the Chronos blueprints from the Society")},
					{Label: "Destroy the compass sketch", Action: dialogue.Command("Destroy the compass sketch before it spreads")},
				},
			},
		},
		"medieval": {
			dialogue.Narrate("The siege of Thornwall grinds on. Somewhere under the rubble lies the Chrono Shard."),
			{
				Speaker: "Chronos Interface",
				Text:    "Intervention window open. The siege will turn on what you do next.",
				Choices: []dialogue.Choice{
					{Label: "Help the defenders hold the wall", Action: dialogue.Command("Help the defenders hold Thornwall")},
					{Label: "Steal the Chrono Shard", Action: dialogue.Command("Take the Chrono Shard from the ruins")},
					{Label: "Break the siege engines", Action: dialogue.Command("Destroy the siege engines at the gate")},
				},
			},
		},
		"cyberpunk": {
			dialogue.Narrate("Neon rain sheets off the convergence spire. The lockdown drones have not noticed you. Yet."),
			{
				Speaker: "Chronos Interface",
				Text:    "Paradox density critical in this era. Act carefully.",
				Choices: []dialogue.Choice{
					{Label: "Help Jinx breach the spire", Action: dialogue.Command("Help the rebel hackers breach the convergence spire")},
					{Label: "Sabotage the Syndicate lockdown", Action: dialogue.Command("Destroy the Syndicate lockdown grid")},
					{Label: "Stabilize a fracture point", Action: dialogue.Command("Protect the nearest reality fracture from collapse")},
				},
			},
		},
	}
}

// observeSequences are the canned "observe" flows per era, same
// fallback rule as actSequences.
func observeSequences() map[string][]dialogue.Line {
	return map[string][]dialogue.Line{
		"renaissance": {
			dialogue.Narrate("You keep to the shadows of the piazza and watch the workshop's candle burn late."),
			{
				Speaker: "Chronos Interface",
				Text:    "Passive observation carries the least risk. What do you study?",
				Choices: []dialogue.Choice{
					{Label: "Study the blueprints", Action: dialogue.Command("Observe the Chronos blueprints in detail")},
					{Label: "Watch the Medici agents", Action: dialogue.Command("Watch the Medici agents around the workshop")},
					{Label: "Scan the timeline here", Action: dialogue.Command("Scan this era for temporal anomalies")},
				},
			},
		},
		"digital": {
			dialogue.Narrate("The rift map scrolls past faster than any human operator could read. The Collective slows it down for you."),
			{
				Speaker: "Chronos Interface",
				Text:    "The network sees everything. Choose a thread to follow.",
				Choices: []dialogue.Choice{
					{Label: "Trace the rift network", Action: dialogue.Command("Observe the rift network topology")},
					{Label: "Audit the Collective", Action: dialogue.Command("Study what the AI Collective is hiding")},
					{Label: "Scan for paradox echoes", Action: dialogue.Command("Scan the network for paradox echoes")},
				},
			},
		},
	}
}

// temporalSequence is the fixed flavor flow for focused temporal
// manipulation, shared by every era.
func temporalSequence() []dialogue.Line {
	return []dialogue.Line{
		dialogue.Narrate("You reach into the local time-stream. The air thickens; seconds queue up around your fingers."),
		{
			Speaker: "Chronos Interface",
			Text:    "Temporal energy committed. Shape the stream.",
			Choices: []dialogue.Choice{
				{Label: "Accelerate local time", Action: dialogue.Command("Accelerate time around this place")},
				{Label: "Rewind the last moments", Action: dialogue.Command("Rewind the last few moments here")},
				{Label: "Freeze the moment", Action: dialogue.Command("Freeze this moment in place")},
			},
		},
	}
}

// choiceResponses maps narrative choice keys to canned reply sequences.
func choiceResponses() map[string][]dialogue.Line {
	return map[string][]dialogue.Line{
		"ask_about_blueprints": {
			dialogue.Say("Leonardo", "Fragments only. Whoever drew the originals understood time the way I understand water."),
			dialogue.Say("Leonardo", "I finish one page and two more appear in my memory. I no longer ask from where."),
		},
		"ask_about_rift": {
			dialogue.Say("Brother Aldric", "It opened on the feast of St. Morwenna. The candles burned backwards for a full night."),
		},
		"ask_about_syndicate": {
			dialogue.Say("Jinx", "They think they can own the convergence. You can't own a drain from inside it."),
		},
		"decline": {
			dialogue.Narrate("You step back. The moment passes, unchanged."),
		},
	}
}

// genericResponse is played when a narrative key has no entry.
func genericResponse() []dialogue.Line {
	return []dialogue.Line{
		dialogue.Narrate("The timeline holds its breath, then lets the moment slip by."),
	}
}
