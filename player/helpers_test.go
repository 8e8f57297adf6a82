package player

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"atlas-players/kafka/producer"

	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.New(
			logrus.StandardLogger(),
			logger.Config{
				SlowThreshold: time.Second,
				LogLevel:      logger.Silent,
				Colorful:      false,
			},
		),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migration(db))
	return db
}

// setupTestContext creates a context with tenant information
func setupTestContext(t *testing.T, tenantId uuid.UUID) context.Context {
	tenantModel, err := tenant.Create(tenantId, "test-region", 1, 0)
	require.NoError(t, err)
	return tenant.WithContext(context.Background(), tenantModel)
}

// MockProducer records produced messages per topic token
type MockProducer struct {
	mu       sync.Mutex
	messages map[string][]kafka.Message
	err      error
}

func NewMockProducer() *MockProducer {
	return &MockProducer{messages: make(map[string][]kafka.Message)}
}

func (m *MockProducer) SetError(message string) {
	m.err = errors.New(message)
}

func (m *MockProducer) Messages(token string) []kafka.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messages[token]
}

func (m *MockProducer) Provider(token string) producer.MessageProducer {
	return func(provider model.Provider[[]kafka.Message]) error {
		if m.err != nil {
			return m.err
		}
		ms, err := provider()
		if err != nil {
			return err
		}
		m.mu.Lock()
		defer m.mu.Unlock()
		m.messages[token] = append(m.messages[token], ms...)
		return nil
	}
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func racePtr(r Race) *Race { return &r }

func professionPtr(p Profession) *Profession { return &p }

func timePtr(t time.Time) *time.Time { return &t }

// validInput returns a complete candidate record
func validInput() Input {
	return Input{
		Name:       strPtr("Zara"),
		Title:      strPtr("Keeper of the Gate"),
		Race:       racePtr(RaceElf),
		Profession: professionPtr(ProfessionDruid),
		Birthday:   timePtr(time.Date(2005, time.March, 4, 0, 0, 0, 0, time.UTC)),
		Experience: int64Ptr(1500),
	}
}

// buildPlayer builds a valid player, failing the test on error
func buildPlayer(t *testing.T, id uint32, name string, experience int64, birthday time.Time) Player {
	p, err := NewBuilder(uuid.New()).
		SetId(id).
		SetName(name).
		SetTitle("Wanderer").
		SetRace(RaceHuman).
		SetProfession(ProfessionWarrior).
		SetBirthday(birthday).
		SetExperience(experience).
		Build()
	require.NoError(t, err)
	return p
}
