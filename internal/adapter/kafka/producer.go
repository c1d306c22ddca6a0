package kafka

import (
	"context"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	_ port.EventsProducer = (*EventsProducer)(nil)
	_ port.EventsProducer = NopEventsProducer{}
)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// An EventsProducer used for produce [domain.StorefrontEvent].
//
// Searches are keyed by the normalized query, cart events by the cart id.
type EventsProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewEventsProducer(opts ...ProducerOpt) (EventsProducer, error) {
	const op = "NewEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return EventsProducer{}, opErr(err, op)
		}
	}

	opPrefix := "EventsProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return EventsProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p EventsProducer) Close() {
	p.producer.close()
}

func (p EventsProducer) ProduceEvents(
	ctx context.Context, vs []domain.StorefrontEvent,
) error {
	const op = "ProduceEvents"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	if len(vs) == 0 {
		return nil
	}

	rs, err := p.createRecords(vs)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	if err := p.producer.produce(ctx, rs...); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}

func (p EventsProducer) createRecords(
	vs []domain.StorefrontEvent,
) (rs []*kgo.Record, err error) {
	const op = "createRecords"

	for _, v := range vs {
		b, err := p.encoder.Encode(eventToSchemaV1(v))
		if err != nil {
			return nil, opErr(err, p.opPrefix, op)
		}
		r := &kgo.Record{Key: []byte(v.Key()), Value: b}
		rs = append(rs, r)
	}

	return rs, nil
}

// NopEventsProducer drops events. It is used when no broker is configured.
type NopEventsProducer struct{}

func (NopEventsProducer) ProduceEvents(context.Context, []domain.StorefrontEvent) error {
	return nil
}
