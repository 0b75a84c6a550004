package eventbus

const (
	TopicCommandEvents = "chronos_command_events"
	TopicParadoxEvents = "chronos_paradox_events"
	TopicSessionEvents = "chronos_session_events"
)

const (
	TypeCommandProcessed = "command.processed"
	TypeCommandBlocked   = "command.blocked"
	TypeParadoxTriggered = "paradox.triggered"
	TypeEraChanged       = "session.era_changed"
	TypeItemDiscovered   = "session.item_discovered"
)
