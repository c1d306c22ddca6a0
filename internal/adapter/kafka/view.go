package kafka

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/lovoo/goka"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.SearchStatsReader = (*SearchStatsView)(nil)

var ErrViewNotReady = errors.New("view is not recovered yet")

// A SearchStatsView reads the search counters maintained
// by [SearchStatsProcessor].
type SearchStatsView struct {
	gv *goka.View
}

func NewSearchStatsView(config SearchStatsConfig) (*SearchStatsView, error) {
	const op = "NewSearchStatsView"

	applySASLTLS(config.Conn)

	gv, err := goka.NewView(
		config.SeedBrokers,
		goka.GroupTable(goka.Group(config.Group)),
		searchCountCodec{},
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	return &SearchStatsView{gv}, nil
}

func (v *SearchStatsView) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "SearchStatsView.Run"
	log := slog.With("op", op)

	defer wg.Done()

	go func() {
		defer stopFn()
		if err := v.gv.Run(ctx); err != nil {
			log.Error("unexpected fail on run", "err", err)
			return
		}
		log.Info("stopped")
	}()
	log.Info("running")
}

// Close is a no-op: the view stops with the context passed to Run.
func (v *SearchStatsView) Close() {}

func (v *SearchStatsView) SearchCount(ctx context.Context, query string) (int64, error) {
	const op = "SearchStatsView.SearchCount"

	if err := ctx.Err(); err != nil {
		return 0, opErr(err, op)
	}
	if !v.gv.Recovered() {
		return 0, opErr(ErrViewNotReady, op)
	}

	value, err := v.gv.Get(domain.NormalizeSearchQuery(query))
	if err != nil {
		return 0, opErr(err, op)
	}
	if value == nil {
		return 0, nil
	}

	n, ok := value.(searchCount)
	if !ok {
		return 0, opErr(fmt.Errorf("%w: %T", ErrInvalidValueType, value), op)
	}
	return int64(n), nil
}
