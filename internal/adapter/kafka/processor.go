package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/pkg/schema"
)

var _ port.SearchStatsProcessor = (*SearchStatsProcessor)(nil)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// An eventCodec used for serde [schema.StorefrontEventV1]
type eventCodec struct {
	serde Serde
}

func newEventCodec(s Serde) eventCodec {
	return eventCodec{s}
}

func (c eventCodec) Encode(v any) ([]byte, error) {
	const op = "eventCodec.Encode"
	if _, ok := v.(schema.StorefrontEventV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c eventCodec) Decode(data []byte) (any, error) {
	const op = "eventCodec.Decode"
	var s schema.StorefrontEventV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, nil
}

// A searchCount is the number of searches for a normalized query.
type searchCount int64

// A searchCountCodec used for serde [searchCount]
type searchCountCodec struct{}

func (searchCountCodec) Encode(v any) ([]byte, error) {
	const op = "searchCountCodec.Encode"
	n, ok := v.(searchCount)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return strconv.AppendInt(nil, int64(n), 10), nil
}

func (searchCountCodec) Decode(data []byte) (any, error) {
	const op = "searchCountCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return searchCount(n), nil
}

// nextSearchCount returns the counter value after event.
// Only search events with a query are counted.
func nextSearchCount(current any, event schema.StorefrontEventV1) (searchCount, bool) {
	if event.Kind != string(domain.EventSearch) {
		return 0, false
	}
	if domain.NormalizeSearchQuery(event.Query) == "" {
		return 0, false
	}
	n, _ := current.(searchCount)
	return n + 1, true
}

// A SearchStatsProcessor counts searches per normalized query
// from the storefront events stream into its group table.
type SearchStatsProcessor struct {
	opPrefix string
	proc     processor
}

// A SearchStatsConfig used for setup [SearchStatsProcessor] and [SearchStatsView].
type SearchStatsConfig struct {
	SeedBrokers  []string
	EventsStream string
	Group        string
	EventsSerde  Serde
	Conn         ConnConfig
}

func NewSearchStatsProcessor(config SearchStatsConfig) (*SearchStatsProcessor, error) {
	const op = "NewSearchStatsProcessor"

	p := SearchStatsProcessor{opPrefix: "SearchStatsProcessor"}

	applySASLTLS(config.Conn)

	gg := goka.DefineGroup(goka.Group(config.Group),
		goka.Input(
			goka.Stream(config.EventsStream),
			newEventCodec(config.EventsSerde),
			p.processFn,
		),
		goka.Persist(searchCountCodec{}),
	)

	gp, err := goka.NewProcessor(config.SeedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{
		opPrefix: p.opPrefix,
		gp:       gp,
	}
	return &p, nil
}

func (p *SearchStatsProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *SearchStatsProcessor) Close() {
	p.proc.close()
}

func (p *SearchStatsProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"

	event, _ := msg.(schema.StorefrontEventV1)
	n, ok := nextSearchCount(ctx.Value(), event)
	if !ok {
		return
	}
	ctx.SetValue(n)

	slog.Debug(
		"search counted",
		"op", makeOp(p.opPrefix, op),
		"query", ctx.Key(),
		"count", int64(n),
	)
}
