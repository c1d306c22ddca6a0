package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/IBM/sarama"
	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/twmb/franz-go/pkg/sasl/plain"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

// A ConnConfig holds the optional broker security settings.
type ConnConfig struct {
	TLSConfig *tls.Config
	User      string
	Pass      string
}

// kgoOpts translates c into franz-go client options.
func (c ConnConfig) kgoOpts() []kgo.Opt {
	var opts []kgo.Opt
	if c.TLSConfig != nil {
		opts = append(opts, kgo.DialTLSConfig(c.TLSConfig))
	}
	if c.User != "" {
		opts = append(opts, kgo.SASL(plain.Auth{
			User: c.User,
			Pass: c.Pass,
		}.AsMechanism()))
	}
	return opts
}

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string, conn ConnConfig,
) ProducerOpt {
	return func(opts *producerOpts) error {
		kopts := append([]kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
		}, conn.kgoOpts()...)

		cl, err := kgo.NewClient(kopts...)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			cl.Close()
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func withNonlogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

// applySASLTLS installs the connection settings into the global
// goka config used by processors and views.
func applySASLTLS(conn ConnConfig) {
	cfg := goka.DefaultConfig()
	if conn.TLSConfig != nil {
		cfg.Net.TLS.Enable = true
		cfg.Net.TLS.Config = conn.TLSConfig
	}
	if conn.User != "" {
		cfg.Net.SASL.Enable = true
		cfg.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		cfg.Net.SASL.User = conn.User
		cfg.Net.SASL.Password = conn.Pass
	}
	goka.ReplaceGlobalConfig(cfg)
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func eventToSchemaV1(v domain.StorefrontEvent) (s schema.StorefrontEventV1) {
	s.Kind = string(v.Kind)
	s.SessionID = v.SessionID
	s.Query = v.Query
	s.CartID = v.CartID
	s.MerchandiseIDs = v.MerchandiseIDs
	if s.MerchandiseIDs == nil {
		s.MerchandiseIDs = []string{}
	}
	s.Quantity = v.Quantity
	s.ResultCount = v.ResultCount
	s.OccurredAt = v.OccurredAt
	return
}
