package main

import (
	"context"
	"os"

	"atlas-players/database"
	playerConsumer "atlas-players/kafka/consumer/player"
	"atlas-players/kafka/producer"
	"atlas-players/logger"
	"atlas-players/player"
	"atlas-players/service"
	"atlas-players/tracing"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-rest/server"
	"github.com/sirupsen/logrus"
)

const serviceName = "atlas-players"
const consumerGroupId = "Player Service"

type Server struct {
	baseUrl string
	prefix  string
}

func (s Server) GetBaseURL() string {
	return s.baseUrl
}

func (s Server) GetPrefix() string {
	return s.prefix
}

func GetServer() Server {
	return Server{
		baseUrl: "",
		prefix:  "/rest/",
	}
}

func producerProvider(l logrus.FieldLogger, ctx context.Context) producer.Provider {
	return producer.ProviderImpl(l)(ctx)
}

func main() {
	l := logger.CreateLogger(serviceName)
	l.Infoln("Starting main service.")

	tdm := service.GetTeardownManager()

	tc, err := tracing.InitTracer(l)(serviceName)
	if err != nil {
		l.WithError(err).Fatal("Unable to initialize tracer.")
	}

	db := database.Connect(l, database.SetMigrations(player.Migration))
	pp := player.ProcessorProviderImpl(db)

	cm := consumer.GetManager()
	playerConsumer.InitConsumers(l)(cm.AddConsumer(l, tdm.Context(), tdm.WaitGroup()))(consumerGroupId)
	if err = playerConsumer.InitHandlers(l, pp, producerProvider)(cm.RegisterHandler); err != nil {
		l.WithError(err).Fatal("Unable to register kafka handlers.")
	}

	server.New(l).
		WithContext(tdm.Context()).
		WithWaitGroup(tdm.WaitGroup()).
		SetBasePath(GetServer().GetPrefix()).
		AddRouteInitializer(player.InitializeRoutes(pp)(GetServer())).
		SetPort(os.Getenv("REST_PORT")).
		Run()

	tdm.TeardownFunc(tracing.Teardown(l)(tc))

	tdm.Wait()
	l.Infoln("Service shutdown.")
}
