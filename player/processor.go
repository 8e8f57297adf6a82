package player

import (
	"context"

	"atlas-players/kafka/message"
	playerMsg "atlas-players/kafka/message/player"
	"atlas-players/kafka/producer"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Processor defines the player query and write operations for one request
type Processor interface {
	WithProducer(producer producer.Provider) Processor

	// Queries
	GetAll(criteria Criteria, order Order, page Page) model.Provider[[]Player]
	Count(criteria Criteria) model.Provider[int]
	GetById(id uint32) model.Provider[Player]

	// Writes
	Create(in Input) model.Provider[Player]
	CreateAndEmit(transactionId uuid.UUID, in Input) (Player, error)
	Update(id uint32, in Input) model.Provider[Player]
	UpdateAndEmit(transactionId uuid.UUID, id uint32, in Input) (Player, error)
	Delete(id uint32) error
	DeleteAndEmit(transactionId uuid.UUID, id uint32) error

	// Commands
	SetBannedAndEmit(transactionId uuid.UUID, id uint32, banned bool) (Player, error)
	AwardExperienceAndEmit(transactionId uuid.UUID, id uint32, amount uint32) (Player, error)
}

// ProcessorProvider constructs a Processor bound to a logger and request context
type ProcessorProvider func(l logrus.FieldLogger, ctx context.Context) Processor

// ProcessorProviderImpl returns a ProcessorProvider backed by the database
func ProcessorProviderImpl(db *gorm.DB) ProcessorProvider {
	return func(l logrus.FieldLogger, ctx context.Context) Processor {
		return NewProcessor(l, ctx, db)
	}
}

// ProcessorImpl implements the Processor interface
type ProcessorImpl struct {
	log      logrus.FieldLogger
	ctx      context.Context
	db       *gorm.DB
	producer producer.Provider
}

// NewProcessor creates a new processor instance
func NewProcessor(log logrus.FieldLogger, ctx context.Context, db *gorm.DB) Processor {
	return &ProcessorImpl{
		log:      log,
		ctx:      ctx,
		db:       db,
		producer: producer.ProviderImpl(log)(ctx),
	}
}

// WithProducer creates a new processor instance emitting through the given producer
func (p *ProcessorImpl) WithProducer(producer producer.Provider) Processor {
	return &ProcessorImpl{
		log:      p.log,
		ctx:      p.ctx,
		db:       p.db,
		producer: producer,
	}
}

// GetAll returns the requested page of players matching the criteria
func (p *ProcessorImpl) GetAll(criteria Criteria, order Order, page Page) model.Provider[[]Player] {
	return func() ([]Player, error) {
		t := tenant.MustFromContext(p.ctx)

		players, err := AllProvider(p.db, p.log)(t.Id())()
		if err != nil {
			return nil, err
		}
		return Query(players, criteria.Predicate(), order, page), nil
	}
}

// Count returns the number of players matching the criteria
func (p *ProcessorImpl) Count(criteria Criteria) model.Provider[int] {
	return func() (int, error) {
		t := tenant.MustFromContext(p.ctx)

		players, err := AllProvider(p.db, p.log)(t.Id())()
		if err != nil {
			return 0, err
		}
		return Count(players, criteria.Predicate()), nil
	}
}

// GetById retrieves a single player
func (p *ProcessorImpl) GetById(id uint32) model.Provider[Player] {
	return func() (Player, error) {
		t := tenant.MustFromContext(p.ctx)
		return ByIdProvider(p.db, p.log)(id, t.Id())()
	}
}

// Create validates and persists a new player
func (p *ProcessorImpl) Create(in Input) model.Provider[Player] {
	return func() (Player, error) {
		t := tenant.MustFromContext(p.ctx)

		candidate, err := Create(t.Id(), in)
		if err != nil {
			return Player{}, err
		}

		entity, err := CreatePlayer(p.db, p.log)(candidate)()
		if err != nil {
			return Player{}, err
		}

		result, err := Make(entity)
		if err != nil {
			return Player{}, err
		}

		p.log.WithFields(logrus.Fields{
			"playerId": result.Id(),
			"name":     result.Name(),
		}).Info("Player created successfully")

		return result, nil
	}
}

// CreateAndEmit creates a player and emits a created status event
func (p *ProcessorImpl) CreateAndEmit(transactionId uuid.UUID, in Input) (Player, error) {
	result, err := p.Create(in)()
	if err != nil {
		return Player{}, err
	}

	p.emitStatus(transactionId, result.Id(), "created", CreatedEventProvider(result))
	return result, nil
}

// Update merges a partial record onto the stored player and persists the result
func (p *ProcessorImpl) Update(id uint32, in Input) model.Provider[Player] {
	return p.update(id, func(Player) Input {
		return in
	})
}

// update loads the prior version, merges the derived input and saves, in one transaction
func (p *ProcessorImpl) update(id uint32, inputFor func(prior Player) Input) model.Provider[Player] {
	return func() (Player, error) {
		t := tenant.MustFromContext(p.ctx)

		if id == 0 {
			return Player{}, ErrInvalidIdentifier
		}

		var result Player
		err := p.db.Transaction(func(tx *gorm.DB) error {
			prior, err := ByIdProvider(tx, p.log)(id, t.Id())()
			if err != nil {
				return err
			}

			merged, err := Merge(prior, inputFor(prior))
			if err != nil {
				return err
			}

			entity, err := UpdatePlayer(tx, p.log)(merged)()
			if err != nil {
				return err
			}

			result, err = Make(entity)
			return err
		})
		if err != nil {
			return Player{}, err
		}

		p.log.WithFields(logrus.Fields{
			"playerId": result.Id(),
			"level":    result.Level(),
		}).Info("Player updated successfully")

		return result, nil
	}
}

// UpdateAndEmit updates a player and emits an updated status event
func (p *ProcessorImpl) UpdateAndEmit(transactionId uuid.UUID, id uint32, in Input) (Player, error) {
	return p.emitUpdated(transactionId, p.Update(id, in))
}

func (p *ProcessorImpl) emitUpdated(transactionId uuid.UUID, provider model.Provider[Player]) (Player, error) {
	result, err := provider()
	if err != nil {
		return Player{}, err
	}

	p.emitStatus(transactionId, result.Id(), "updated", UpdatedEventProvider(result))
	return result, nil
}

// Delete removes a player
func (p *ProcessorImpl) Delete(id uint32) error {
	t := tenant.MustFromContext(p.ctx)

	if err := DeletePlayer(p.db, p.log)(id, t.Id()); err != nil {
		return err
	}

	p.log.WithField("playerId", id).Info("Player deleted successfully")
	return nil
}

// DeleteAndEmit removes a player and emits a deleted status event
func (p *ProcessorImpl) DeleteAndEmit(transactionId uuid.UUID, id uint32) error {
	if err := p.Delete(id); err != nil {
		return err
	}

	p.emitStatus(transactionId, id, "deleted", DeletedEventProvider(id))
	return nil
}

// emitStatus publishes a status event for a write that has already been
// committed. A failed emit is logged and does not fail the write.
func (p *ProcessorImpl) emitStatus(transactionId uuid.UUID, playerId uint32, kind string, provider model.Provider[[]kafka.Message]) {
	fields := logrus.Fields{
		"transactionId": transactionId,
		"playerId":      playerId,
		"event":         kind,
	}

	err := message.Emit(p.producer)(func(buf *message.Buffer) error {
		return buf.Put(playerMsg.EnvEventTopicStatus, provider)
	})
	if err != nil {
		p.log.WithError(err).WithFields(fields).Warn("Unable to emit player status event.")
		return
	}
	p.log.WithFields(fields).Debug("Player status event emitted")
}

// SetBannedAndEmit sets or clears the banned flag of a player
func (p *ProcessorImpl) SetBannedAndEmit(transactionId uuid.UUID, id uint32, banned bool) (Player, error) {
	return p.emitUpdated(transactionId, p.Update(id, Input{Banned: &banned}))
}

// AwardExperienceAndEmit adds experience to a player. The total is still bound
// by the experience limit.
func (p *ProcessorImpl) AwardExperienceAndEmit(transactionId uuid.UUID, id uint32, amount uint32) (Player, error) {
	return p.emitUpdated(transactionId, p.update(id, func(prior Player) Input {
		experience := int64(prior.Experience()) + int64(amount)
		return Input{Experience: &experience}
	}))
}
