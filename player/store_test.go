package player

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityRoundTrip(t *testing.T) {
	p, err := validBuilder().SetId(4).SetBanned(true).Build()
	require.NoError(t, err)

	entity := p.ToEntity()
	assert.Equal(t, uint32(4), entity.ID)
	assert.Equal(t, p.Level(), entity.Level)
	assert.Equal(t, p.UntilNextLevel(), entity.UntilNextLevel)

	made, err := Make(entity)
	require.NoError(t, err)
	assert.Equal(t, p, made)
}

func TestMake_RederivesAttributes(t *testing.T) {
	p, err := validBuilder().SetId(4).Build()
	require.NoError(t, err)

	entity := p.ToEntity()
	entity.Level = 77
	entity.UntilNextLevel = 1

	made, err := Make(entity)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), made.Level())
	assert.Equal(t, uint32(600), made.UntilNextLevel())
}

func TestCreatePlayer_AssignsIdentifier(t *testing.T) {
	db := setupTestDB(t)
	log, _ := test.NewNullLogger()
	tenantId := uuid.New()

	candidate, err := Create(tenantId, validInput())
	require.NoError(t, err)

	first, err := CreatePlayer(db, log)(candidate)()
	require.NoError(t, err)
	second, err := CreatePlayer(db, log)(candidate)()
	require.NoError(t, err)

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestByIdProvider(t *testing.T) {
	db := setupTestDB(t)
	log, _ := test.NewNullLogger()
	tenantId := uuid.New()

	candidate, err := Create(tenantId, validInput())
	require.NoError(t, err)
	entity, err := CreatePlayer(db, log)(candidate)()
	require.NoError(t, err)

	p, err := ByIdProvider(db, log)(entity.ID, tenantId)()
	require.NoError(t, err)
	assert.Equal(t, "Zara", p.Name())
	assert.True(t, candidate.Birthday().Equal(p.Birthday()))

	_, err = ByIdProvider(db, log)(entity.ID+100, tenantId)()
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = ByIdProvider(db, log)(0, tenantId)()
	assert.ErrorIs(t, err, ErrInvalidIdentifier)

	// other tenants cannot see the record
	_, err = ByIdProvider(db, log)(entity.ID, uuid.New())()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAllProvider_OrdersByIdentifier(t *testing.T) {
	db := setupTestDB(t)
	log, _ := test.NewNullLogger()
	tenantId := uuid.New()

	for _, name := range []string{"Cid", "Ann", "Bo"} {
		in := validInput()
		in.Name = strPtr(name)
		candidate, err := Create(tenantId, in)
		require.NoError(t, err)
		_, err = CreatePlayer(db, log)(candidate)()
		require.NoError(t, err)
	}
	other, err := Create(uuid.New(), validInput())
	require.NoError(t, err)
	_, err = CreatePlayer(db, log)(other)()
	require.NoError(t, err)

	ps, err := AllProvider(db, log)(tenantId)()
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, "Cid", ps[0].Name())
	assert.Equal(t, "Ann", ps[1].Name())
	assert.Equal(t, "Bo", ps[2].Name())
	assert.Less(t, ps[0].Id(), ps[1].Id())
}

func TestAllProvider_SkipsInvalidRows(t *testing.T) {
	db := setupTestDB(t)
	log, hook := test.NewNullLogger()
	tenantId := uuid.New()

	candidate, err := Create(tenantId, validInput())
	require.NoError(t, err)
	valid, err := CreatePlayer(db, log)(candidate)()
	require.NoError(t, err)

	stale := candidate.ToEntity()
	stale.ID = 0
	stale.Race = Race("DRAGON")
	require.NoError(t, db.Create(&stale).Error)

	ps, err := AllProvider(db, log)(tenantId)()
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, valid.ID, ps[0].Id())

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, stale.ID, hook.LastEntry().Data["playerId"])
}

func TestUpdatePlayer(t *testing.T) {
	db := setupTestDB(t)
	log, _ := test.NewNullLogger()
	tenantId := uuid.New()

	candidate, err := Create(tenantId, validInput())
	require.NoError(t, err)
	entity, err := CreatePlayer(db, log)(candidate)()
	require.NoError(t, err)
	stored, err := Make(entity)
	require.NoError(t, err)

	merged, err := Merge(stored, Input{Experience: int64Ptr(100), Birthday: timePtr(time.UnixMilli(0).UTC())})
	require.NoError(t, err)
	_, err = UpdatePlayer(db, log)(merged)()
	require.NoError(t, err)

	reloaded, err := ByIdProvider(db, log)(stored.Id(), tenantId)()
	require.NoError(t, err)
	assert.Equal(t, uint32(100), reloaded.Experience())
	assert.Equal(t, uint32(1), reloaded.Level())
	assert.Equal(t, int64(0), reloaded.Birthday().UnixMilli())
}

func TestDeletePlayer(t *testing.T) {
	db := setupTestDB(t)
	log, _ := test.NewNullLogger()
	tenantId := uuid.New()

	candidate, err := Create(tenantId, validInput())
	require.NoError(t, err)
	entity, err := CreatePlayer(db, log)(candidate)()
	require.NoError(t, err)

	assert.ErrorIs(t, DeletePlayer(db, log)(entity.ID, uuid.New()), ErrNotFound)
	assert.ErrorIs(t, DeletePlayer(db, log)(0, tenantId), ErrInvalidIdentifier)

	require.NoError(t, DeletePlayer(db, log)(entity.ID, tenantId))
	assert.ErrorIs(t, DeletePlayer(db, log)(entity.ID, tenantId), ErrNotFound)

	_, err = ByIdProvider(db, log)(entity.ID, tenantId)()
	assert.ErrorIs(t, err, ErrNotFound)
}
