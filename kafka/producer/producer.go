package producer

import (
	"context"
	"errors"
	"fmt"

	"atlas-players/kafka/consumer"
	"atlas-players/retry"

	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/Chronicle20/atlas-tenant"
	"github.com/opentracing/opentracing-go"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// MessageProducer writes the provided messages to a single topic
type MessageProducer func(provider model.Provider[[]kafka.Message]) error

// Provider resolves a topic token to a MessageProducer
type Provider func(token string) MessageProducer

// ProviderImpl produces to the topic named by the token's environment variable,
// stamping tenant and span headers from the context onto each message.
func ProviderImpl(l logrus.FieldLogger) func(ctx context.Context) func(token string) MessageProducer {
	return func(ctx context.Context) func(token string) MessageProducer {
		return func(token string) MessageProducer {
			return func(provider model.Provider[[]kafka.Message]) error {
				ms, err := provider()
				if err != nil {
					return err
				}
				if len(ms) == 0 {
					return nil
				}

				t, err := topic.EnvProvider(l)(token)()
				if err != nil {
					return err
				}
				brokers := consumer.LookupBrokers()
				if len(brokers) == 0 {
					return errors.New("no kafka brokers configured")
				}

				headers := contextHeaders(ctx)
				for i := range ms {
					ms[i].Headers = append(ms[i].Headers, headers...)
				}

				w := &kafka.Writer{
					Addr:     kafka.TCP(brokers...),
					Topic:    t,
					Balancer: &kafka.Hash{},
				}
				defer func() {
					if cerr := w.Close(); cerr != nil {
						l.WithError(cerr).Warn("Unable to close kafka writer.")
					}
				}()

				cfg := retry.Default().WithLogger(l).WithContext(ctx)
				return retry.Execute(cfg, func() error {
					return w.WriteMessages(ctx, ms...)
				})
			}
		}
	}
}

func contextHeaders(ctx context.Context) []kafka.Header {
	var headers []kafka.Header

	if span := opentracing.SpanFromContext(ctx); span != nil {
		carrier := opentracing.TextMapCarrier{}
		if err := opentracing.GlobalTracer().Inject(span.Context(), opentracing.TextMap, carrier); err == nil {
			for k, v := range carrier {
				headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
			}
		}
	}

	t := tenant.MustFromContext(ctx)
	headers = append(headers,
		kafka.Header{Key: "TENANT_ID", Value: []byte(t.Id().String())},
		kafka.Header{Key: "REGION", Value: []byte(t.Region())},
		kafka.Header{Key: "MAJOR_VERSION", Value: []byte(fmt.Sprint(t.MajorVersion()))},
		kafka.Header{Key: "MINOR_VERSION", Value: []byte(fmt.Sprint(t.MinorVersion()))},
	)
	return headers
}
