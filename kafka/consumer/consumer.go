package consumer

import (
	"os"
	"strings"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/sirupsen/logrus"
)

type Config = consumer.Config

func NewConfig(l logrus.FieldLogger) func(name string) func(token string) func(groupId string) Config {
	return func(name string) func(token string) func(groupId string) Config {
		return func(token string) func(groupId string) Config {
			t, _ := topic.EnvProvider(l)(token)()
			return func(groupId string) Config {
				return consumer.NewConfig(LookupBrokers(), name, t, groupId)
			}
		}
	}
}

// LookupBrokers returns the comma separated BOOTSTRAP_SERVERS entries
func LookupBrokers() []string {
	var brokers []string
	for _, b := range strings.Split(os.Getenv("BOOTSTRAP_SERVERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
