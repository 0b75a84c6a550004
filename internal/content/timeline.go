package content

// defaultTimeline seeds the session timeline with the canonical anchor
// points. Statuses match the backend's default seed: the Renaissance
// and Digital anchors start shifting, Neo-Kyoto starts in paradox.
func defaultTimeline() []TimelineNode {
	return []TimelineNode{
		{ID: "n1", Year: 800, Era: "Dark Ages", Label: "The Awakening",
			Description: "Ancient temporal rift first detected by monks", Status: NodeStable, Unlocked: true},
		{ID: "n2", Year: 1200, Era: "Medieval", Label: "Castle Siege",
			Description: "War over the first temporal artifact", Status: NodeStable, Unlocked: true},
		{ID: "n3", Year: 1400, Era: "Renaissance", Label: "Leonardo's Workshop",
			Description: "Da Vinci discovers the Chronos blueprints", Status: NodeShifting, Unlocked: true},
		{ID: "n4", Year: 1750, Era: "Enlightenment", Label: "The Invention",
			Description: "First temporal compass assembled", Status: NodeStable, Unlocked: true},
		{ID: "n5", Year: 1900, Era: "Industrial", Label: "The Machine",
			Description: "Industrial-scale temporal experiments begin", Status: NodeStable, Unlocked: true},
		{ID: "n6", Year: 2024, Era: "Digital", Label: "The Singularity",
			Description: "AI becomes aware of temporal rifts", Status: NodeShifting, Unlocked: true},
		{ID: "n7", Year: 2200, Era: "Neo Age", Label: "First Colony",
			Description: "Humanity's first temporal colony established", Status: NodeStable, Unlocked: true},
		{ID: "n8", Year: 2847, Era: "Cyberpunk", Label: "Neo-Kyoto",
			Description: "The Chronos Paradox reaches critical mass", Status: NodeParadox, Unlocked: true},
	}
}
