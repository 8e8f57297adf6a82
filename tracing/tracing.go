package tracing

import (
	"fmt"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
)

// InitTracer configures the global tracer from the JAEGER_* environment.
func InitTracer(l logrus.FieldLogger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, fmt.Errorf("unable to read tracer configuration: %w", err)
		}
		cfg.ServiceName = serviceName
		if cfg.Sampler == nil || cfg.Sampler.Type == "" {
			cfg.Sampler = &config.SamplerConfig{Type: jaeger.SamplerTypeConst, Param: 1}
		}

		tracer, closer, err := cfg.NewTracer(config.Logger(LogrusAdapter{logger: l}))
		if err != nil {
			return nil, fmt.Errorf("unable to create tracer: %w", err)
		}
		opentracing.SetGlobalTracer(tracer)
		return closer, nil
	}
}

func Teardown(l logrus.FieldLogger) func(tc io.Closer) func() {
	return func(tc io.Closer) func() {
		return func() {
			if err := tc.Close(); err != nil {
				l.WithError(err).Errorf("Unable to close tracer.")
			}
		}
	}
}

// StartSpan starts a span and returns a logger annotated with its identifiers.
func StartSpan(l logrus.FieldLogger, name string, opts ...opentracing.StartSpanOption) (logrus.FieldLogger, opentracing.Span) {
	span := opentracing.StartSpan(name, opts...)
	fields := logrus.Fields{"span.name": name}
	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		fields["trace.id"] = sc.TraceID().String()
		fields["span.id"] = sc.SpanID().String()
	}
	return l.WithFields(fields), span
}

// LogrusAdapter lets the tracer report through logrus.
type LogrusAdapter struct {
	logger logrus.FieldLogger
}

func (l LogrusAdapter) Error(msg string) {
	l.logger.Error(msg)
}

func (l LogrusAdapter) Infof(msg string, args ...interface{}) {
	l.logger.Infof(msg, args...)
}
