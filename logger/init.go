package logger

import (
	"os"

	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
)

// CreateLogger builds the service logger. Entries are ECS formatted and carry the service name.
func CreateLogger(serviceName string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&ecslogrus.Formatter{})
	l.AddHook(newHook(serviceName))

	if val, ok := os.LookupEnv("LOG_LEVEL"); ok {
		if level, err := logrus.ParseLevel(val); err == nil {
			l.SetLevel(level)
		}
	}
	return l
}

type ExtraFieldHook struct {
	service string
}

func newHook(service string) *ExtraFieldHook {
	return &ExtraFieldHook{service: service}
}

func (h *ExtraFieldHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *ExtraFieldHook) Fire(entry *logrus.Entry) error {
	entry.Data["service.name"] = h.service
	return nil
}
