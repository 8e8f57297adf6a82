package player

import (
	playerMsg "atlas-players/kafka/message/player"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

// CreatedEventProvider creates a provider for player created status events
func CreatedEventProvider(p Player) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(p.Id()))
	value := &playerMsg.StatusEvent[playerMsg.CreatedStatusEventBody]{
		PlayerId: p.Id(),
		Type:     playerMsg.StatusEventTypeCreated,
		Body: playerMsg.CreatedStatusEventBody{
			Name:       p.Name(),
			Race:       string(p.Race()),
			Profession: string(p.Profession()),
			Level:      p.Level(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// UpdatedEventProvider creates a provider for player updated status events
func UpdatedEventProvider(p Player) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(p.Id()))
	value := &playerMsg.StatusEvent[playerMsg.UpdatedStatusEventBody]{
		PlayerId: p.Id(),
		Type:     playerMsg.StatusEventTypeUpdated,
		Body: playerMsg.UpdatedStatusEventBody{
			Name:       p.Name(),
			Banned:     p.Banned(),
			Experience: p.Experience(),
			Level:      p.Level(),
		},
	}
	return producer.SingleMessageProvider(key, value)
}

// DeletedEventProvider creates a provider for player deleted status events
func DeletedEventProvider(playerId uint32) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(playerId))
	value := &playerMsg.StatusEvent[playerMsg.DeletedStatusEventBody]{
		PlayerId: playerId,
		Type:     playerMsg.StatusEventTypeDeleted,
		Body:     playerMsg.DeletedStatusEventBody{},
	}
	return producer.SingleMessageProvider(key, value)
}

// ErrorEventProvider creates a provider for command failure status events
func ErrorEventProvider(playerId uint32, errorCode string, command string, message string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(playerId))
	value := &playerMsg.StatusEvent[playerMsg.ErrorStatusEventBody]{
		PlayerId: playerId,
		Type:     playerMsg.StatusEventTypeError,
		Body: playerMsg.ErrorStatusEventBody{
			Error:   errorCode,
			Command: command,
			Message: message,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
