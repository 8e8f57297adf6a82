package player

import (
	"context"

	localConsumer "atlas-players/kafka/consumer"
	"atlas-players/kafka/message"
	playerMsg "atlas-players/kafka/message/player"
	"atlas-players/kafka/producer"
	playerService "atlas-players/player"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/handler"
	kafka "github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ProducerProvider resolves the producer used to report failed commands
type ProducerProvider func(l logrus.FieldLogger, ctx context.Context) producer.Provider

// InitConsumers initializes the player command consumer
func InitConsumers(l logrus.FieldLogger) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			rf(localConsumer.NewConfig(l)("player_command")(playerMsg.EnvCommandTopic)(consumerGroupId),
				consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser),
			)
		}
	}
}

// InitHandlers registers the player command handlers on the command topic
func InitHandlers(l logrus.FieldLogger, pp playerService.ProcessorProvider, ep ProducerProvider) func(rf func(topic string, handler handler.Handler) (string, error)) error {
	return func(rf func(topic string, handler handler.Handler) (string, error)) error {
		t, err := topic.EnvProvider(l)(playerMsg.EnvCommandTopic)()
		if err != nil {
			return err
		}
		for _, h := range []handler.Handler{
			kafka.AdaptHandler(kafka.PersistentConfig(handleBan(pp, ep))),
			kafka.AdaptHandler(kafka.PersistentConfig(handleUnban(pp, ep))),
			kafka.AdaptHandler(kafka.PersistentConfig(handleAwardExperience(pp, ep))),
		} {
			if _, err = rf(t, h); err != nil {
				return err
			}
		}
		return nil
	}
}

func handleBan(pp playerService.ProcessorProvider, ep ProducerProvider) kafka.Handler[playerMsg.Command[playerMsg.BanCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd playerMsg.Command[playerMsg.BanCommandBody]) {
		if cmd.Type != playerMsg.CommandBan {
			return
		}
		l.WithField("playerId", cmd.PlayerId).Debug("Processing ban command")

		_, err := pp(l, ctx).SetBannedAndEmit(uuid.New(), cmd.PlayerId, true)
		if err != nil {
			emitError(l, ctx, ep, cmd.PlayerId, cmd.Type, err)
			return
		}
		l.WithField("playerId", cmd.PlayerId).Info("Player banned")
	}
}

func handleUnban(pp playerService.ProcessorProvider, ep ProducerProvider) kafka.Handler[playerMsg.Command[playerMsg.UnbanCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd playerMsg.Command[playerMsg.UnbanCommandBody]) {
		if cmd.Type != playerMsg.CommandUnban {
			return
		}
		l.WithField("playerId", cmd.PlayerId).Debug("Processing unban command")

		_, err := pp(l, ctx).SetBannedAndEmit(uuid.New(), cmd.PlayerId, false)
		if err != nil {
			emitError(l, ctx, ep, cmd.PlayerId, cmd.Type, err)
			return
		}
		l.WithField("playerId", cmd.PlayerId).Info("Player unbanned")
	}
}

func handleAwardExperience(pp playerService.ProcessorProvider, ep ProducerProvider) kafka.Handler[playerMsg.Command[playerMsg.AwardExperienceCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, cmd playerMsg.Command[playerMsg.AwardExperienceCommandBody]) {
		if cmd.Type != playerMsg.CommandAwardExperience {
			return
		}
		l.WithFields(logrus.Fields{
			"playerId": cmd.PlayerId,
			"amount":   cmd.Body.Amount,
		}).Debug("Processing award experience command")

		p, err := pp(l, ctx).AwardExperienceAndEmit(uuid.New(), cmd.PlayerId, cmd.Body.Amount)
		if err != nil {
			emitError(l, ctx, ep, cmd.PlayerId, cmd.Type, err)
			return
		}
		l.WithFields(logrus.Fields{
			"playerId":   p.Id(),
			"experience": p.Experience(),
			"level":      p.Level(),
		}).Info("Experience awarded")
	}
}

func emitError(l logrus.FieldLogger, ctx context.Context, ep ProducerProvider, playerId uint32, command string, err error) {
	l.WithError(err).WithFields(logrus.Fields{
		"playerId": playerId,
		"command":  command,
	}).Error("Failed to process player command")

	provider := playerService.ErrorEventProvider(playerId, playerService.ErrorCode(err), command, err.Error())
	if emitErr := message.Emit(ep(l, ctx))(func(buf *message.Buffer) error {
		return buf.Put(playerMsg.EnvEventTopicStatus, provider)
	}); emitErr != nil {
		l.WithError(emitErr).Error("Failed to emit error event for player command")
	}
}
