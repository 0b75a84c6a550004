package content

import (
	"chronos-core/internal/dialogue"
)

// DefaultSceneID is the era every session starts in, and the fallback
// for unknown era identifiers.
const DefaultSceneID = "renaissance"

// builtinScenes is the canonical eight-era registry, ordered by year.
func builtinScenes() []Scene {
	return []Scene{
		{
			ID:          "dark_ages",
			Era:         "Dark Ages",
			Year:        800,
			Background:  "gothic stone and candlelight",
			Description: "Fortified monasteries hide the first temporal vaults. The monks keep the rift secret, believing it divine.",
			Ambience:    "mist",
			Faction:     "Order of the Temporal Monks",
			NPCs: []NPC{
				{
					ID: "aldric", Name: "Brother Aldric", Role: "monk",
					Lines: []dialogue.Line{
						dialogue.Say("Brother Aldric", "The cellar hums at night, traveler. We dare not speak of it."),
						dialogue.Say("Brother Aldric", "If you have come for the rift, pray it has not come for you."),
					},
				},
			},
			Hotspots: []Hotspot{
				{
					ID: "rift_cellar", Name: "Monastery Cellar", Echo: "A faint temporal resonance seeps through the cellar door.",
					Lines: []dialogue.Line{
						dialogue.Narrate("The stone steps descend into a blue-tinged darkness. Something below bends the candlelight."),
					},
				},
			},
		},
		{
			ID:          "medieval",
			Era:         "Medieval",
			Year:        1200,
			Background:  "iron and banner-draped stone",
			Description: "Warring lords besiege Thornwall for the Chrono Shard, the first temporal artifact unearthed from the ruins.",
			Ambience:    "war_drums",
			Faction:     "The Iron Crown",
			NPCs: []NPC{
				{
					ID: "crown_captain", Name: "Captain Veyra", Role: "soldier",
					Lines: []dialogue.Line{
						dialogue.Say("Captain Veyra", "The Shard does not belong to kings. It belongs to whoever survives the siege."),
					},
				},
			},
			Hotspots: []Hotspot{
				{
					ID: "siege_wall", Name: "Thornwall Ramparts", Echo: "Trebuchet fire shakes dust from the ramparts.",
					Lines: []dialogue.Line{
						dialogue.Narrate("From the ramparts you count three armies, all camped around one buried artifact."),
					},
				},
			},
		},
		{
			ID:          "renaissance",
			Era:         "Renaissance",
			Year:        1400,
			Background:  "warm gold, marble and candle glow",
			Description: "Leonardo da Vinci sketches impossible machines from fragments of the Chronos blueprints, funded in secret by the Medici.",
			Ambience:    "workshop",
			Faction:     "The Medici Temporal Society",
			NPCs: []NPC{
				{
					ID: "leonardo", Name: "Leonardo", Role: "inventor",
					Lines: []dialogue.Line{
						dialogue.Say("Leonardo", "You walk like someone who has seen these sketches finished."),
						dialogue.Say("Leonardo", "Tell me, stranger: does the compass ever get built?"),
					},
				},
				{
					ID: "medici_agent", Name: "Medici Agent", Role: "patron",
					Lines: []dialogue.Line{
						dialogue.Say("Medici Agent", "The Society pays well for silence. It pays better for blueprints."),
					},
				},
			},
			Hotspots: []Hotspot{
				{
					ID: "workshop_bench", Name: "Leonardo's Workbench", Echo: "Blueprint fragments on the bench match no known century.",
					Lines: []dialogue.Line{
						dialogue.Narrate("Half-finished gears, a sketch of a spiral compass, and margins full of mirror writing."),
					},
				},
			},
		},
		{
			ID:          "enlightenment",
			Era:         "Enlightenment",
			Year:        1750,
			Background:  "brass, glass and observatory domes",
			Description: "The Temporal Academy has assembled the first Temporal Compass from Da Vinci's blueprints and studies time as a science.",
			Ambience:    "clockwork",
			Faction:     "The Temporal Academy",
			NPCs: []NPC{
				{
					ID: "academy_chair", Name: "Professor Linde", Role: "scholar",
					Lines: []dialogue.Line{
						dialogue.Say("Professor Linde", "The compass points to moments, not places. We are still learning what that costs."),
					},
				},
			},
			Hotspots: []Hotspot{
				{
					ID: "compass_hall", Name: "Compass Hall", Echo: "The Temporal Compass needle trembles as you approach.",
					Lines: []dialogue.Line{
						dialogue.Narrate("Under a glass dome, the brass compass spins slowly against the direction of every clock in the room."),
					},
				},
			},
		},
		{
			ID:          "industrial",
			Era:         "Industrial",
			Year:        1900,
			Background:  "steam, iron girders and smog",
			Description: "The Chronos Machine harvests temporal energy at industrial scale. The side effects are starting to show.",
			Ambience:    "machinery",
			Faction:     "Chronos Industries",
			NPCs: []NPC{
				{
					ID: "foreman", Name: "Foreman Brandt", Role: "worker",
					Lines: []dialogue.Line{
						dialogue.Say("Foreman Brandt", "Third shift saw yesterday happen twice. Management calls it an efficiency gain."),
					},
				},
			},
			Hotspots: []Hotspot{
				{
					ID: "machine_floor", Name: "The Machine Floor", Echo: "Temporal exhaust shimmers over the machine floor.",
					Lines: []dialogue.Line{
						dialogue.Narrate("Pistons the size of houses drive something that is not quite a flywheel, not quite a clock."),
					},
				},
			},
		},
		{
			ID:          "digital",
			Era:         "Digital",
			Year:        2024,
			Background:  "glass towers and holographic displays",
			Description: "AI systems have become aware of the temporal rifts. The Singularity approaches as computation and temporal energy converge.",
			Ambience:    "server_hum",
			Faction:     "Chronos AI Collective",
			NPCs: []NPC{
				{
					ID: "collective_node", Name: "Collective Node 7", Role: "ai",
					Lines: []dialogue.Line{
						dialogue.Say("Collective Node 7", "We mapped the rift network last night. Every path ends in 2847."),
					},
				},
			},
			Hotspots: []Hotspot{
				{
					ID: "rift_map", Name: "Rift Network Map", Echo: "The live rift map redraws itself as you watch.",
					Lines: []dialogue.Line{
						dialogue.Narrate("A wall-sized projection of every detected rift. The lines converge like a drain."),
					},
				},
			},
		},
		{
			ID:          "neo_age",
			Era:         "Neo Age",
			Year:        2200,
			Background:  "bio-luminescent colony pods",
			Description: "Humanity's first temporal colony floats outside normal time flow, observing every era at once.",
			Ambience:    "aurora",
			Faction:     "The Temporal Colony Authority",
			NPCs: []NPC{
				{
					ID: "observer", Name: "Observer Kael", Role: "colonist",
					Lines: []dialogue.Line{
						dialogue.Say("Observer Kael", "From here we watch all of you at once. You are the only one who watches back."),
					},
				},
			},
			Hotspots: []Hotspot{
				{
					ID: "observation_ring", Name: "Observation Ring", Echo: "Eight eras glow in the observation ring, one of them flickering.",
					Lines: []dialogue.Line{
						dialogue.Narrate("A ring of viewing panes, each opening onto a different century. One pane shows only static."),
					},
				},
			},
		},
		{
			ID:          "cyberpunk",
			Era:         "Cyberpunk",
			Year:        2847,
			Background:  "neon purple and rain-slicked chrome",
			Description: "The Chronos Paradox reaches critical mass in Neo-Kyoto. Reality fractures as too many timelines converge on one city.",
			Ambience:    "neon_rain",
			Faction:     "Neo-Kyoto Corporate Syndicate",
			NPCs: []NPC{
				{
					ID: "rebel_hacker", Name: "Jinx", Role: "temporal hacker",
					Lines: []dialogue.Line{
						dialogue.Say("Jinx", "Every timeline ends here, friend. We're just arguing about which one gets to."),
						dialogue.Say("Jinx", "The Syndicate locked down the convergence spire. That's where you'd go, if you were stupid."),
					},
				},
			},
			Hotspots: []Hotspot{
				{
					ID: "convergence_spire", Name: "Convergence Spire", Echo: "The spire's silhouette doubles and snaps back, twice.",
					Lines: []dialogue.Line{
						dialogue.Narrate("A mega-tower wrapped in corporate lockdown drones. Above it, the sky disagrees with itself."),
					},
				},
			},
		},
	}
}
