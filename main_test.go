package main

import (
	"context"
	"testing"

	"github.com/Chronicle20/atlas-tenant"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServer(t *testing.T) {
	s := GetServer()
	assert.Equal(t, "", s.GetBaseURL())
	assert.Equal(t, "/rest/", s.GetPrefix())
}

func TestServiceIdentity(t *testing.T) {
	assert.Equal(t, "atlas-players", serviceName)
	assert.NotEmpty(t, consumerGroupId)
}

func TestProducerProvider(t *testing.T) {
	l, _ := test.NewNullLogger()
	tm, err := tenant.Create(uuid.New(), "GMS", 83, 1)
	require.NoError(t, err)

	p := producerProvider(l, tenant.WithContext(context.Background(), tm))
	require.NotNil(t, p)
	assert.NotNil(t, p("EVENT_TOPIC_PLAYER_STATUS"))
}
