package player

const (
	EnvCommandTopic     = "COMMAND_TOPIC_PLAYER"
	EnvEventTopicStatus = "EVENT_TOPIC_PLAYER_STATUS"
)

// Command types
const (
	CommandBan             = "BAN"
	CommandUnban           = "UNBAN"
	CommandAwardExperience = "AWARD_EXPERIENCE"
)

// Status event types
const (
	StatusEventTypeCreated = "CREATED"
	StatusEventTypeUpdated = "UPDATED"
	StatusEventTypeDeleted = "DELETED"
	StatusEventTypeError   = "ERROR"
)

// Generic command structure
type Command[E any] struct {
	PlayerId uint32 `json:"playerId"`
	Type     string `json:"type"`
	Body     E      `json:"body"`
}

type BanCommandBody struct {
}

type UnbanCommandBody struct {
}

type AwardExperienceCommandBody struct {
	Amount uint32 `json:"amount"`
}

// Generic status event structure
type StatusEvent[E any] struct {
	PlayerId uint32 `json:"playerId"`
	Type     string `json:"type"`
	Body     E      `json:"body"`
}

type CreatedStatusEventBody struct {
	Name       string `json:"name"`
	Race       string `json:"race"`
	Profession string `json:"profession"`
	Level      uint32 `json:"level"`
}

type UpdatedStatusEventBody struct {
	Name       string `json:"name"`
	Banned     bool   `json:"banned"`
	Experience uint32 `json:"experience"`
	Level      uint32 `json:"level"`
}

type DeletedStatusEventBody struct {
}

type ErrorStatusEventBody struct {
	Error   string `json:"error"`
	Command string `json:"command"`
	Message string `json:"message"`
}
