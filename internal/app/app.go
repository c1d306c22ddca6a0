package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/shopify"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/cartsession"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

const evictionInterval = time.Minute

type broker struct {
	conn        kafka.ConnConfig
	eventsSerde schema.Serde
	producer    *kafka.EventsProducer
	statsProc   *kafka.SearchStatsProcessor
	statsView   *kafka.SearchStatsView
}

type outbound struct {
	shopify   *shopify.Client
	sqlDB     *storage.SQLDB
	cartStore port.CartIDStore
	events    port.EventsProducer
}

type core struct {
	catalog  service.Catalog
	carts    *service.Cart
	sessions *cartsession.Registry
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	broker     broker
	outbound   outbound
	core       core
	httpServer httphandler.HTTPServer
	wg         sync.WaitGroup
}

func New(ctx context.Context, config config.Config) *App {
	app := &App{ctx: ctx, cfg: config}

	app.initLogger()
	if app.cfg.Broker.Enabled() {
		app.initBroker()
	}
	app.initOutboundAdapters()
	app.initCore()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initBroker() {
	const op = "App.initBroker"
	cfg := app.cfg.Broker

	tlsConfig, err := adapter.MakeTLSConfig(cfg.TLS.CA, cfg.TLS.Cert, cfg.TLS.Key)
	if err != nil {
		app.fallDown(op, err)
	}
	app.broker.conn = kafka.ConnConfig{
		TLSConfig: tlsConfig, User: cfg.User, Pass: cfg.Pass,
	}

	srOpts := []sr.ClientOpt{sr.URLs(cfg.SchemaRegistryURLs...)}
	if tlsConfig != nil {
		srOpts = append(srOpts, sr.DialTLSConfig(tlsConfig))
	}
	if cfg.User != "" {
		srOpts = append(srOpts, sr.BasicAuth(cfg.User, cfg.Pass))
	}
	srClient, err := sr.NewClient(srOpts...)
	if err != nil {
		app.fallDown(op, err)
	}

	eventsSerde, err := schema.NewSerdeStorefrontEventV1(
		app.ctx,
		schema.SubjectOpt(schema.SubjectName(cfg.Topics.StorefrontEvents)),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.broker.eventsSerde = eventsSerde

	producer, err := kafka.NewEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx, cfg.SeedBrokers, cfg.Topics.StorefrontEvents, app.broker.conn,
		),
		kafka.ProducerEncoderOpt(eventsSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.broker.producer = &producer

	statsConfig := kafka.SearchStatsConfig{
		SeedBrokers:  cfg.SeedBrokers,
		EventsStream: cfg.Topics.StorefrontEvents,
		Group:        cfg.Consumers.SearchStatsGroup,
		EventsSerde:  eventsSerde,
		Conn:         app.broker.conn,
	}

	statsProc, err := kafka.NewSearchStatsProcessor(statsConfig)
	if err != nil {
		app.fallDown(op, err)
	}
	app.broker.statsProc = statsProc

	statsView, err := kafka.NewSearchStatsView(statsConfig)
	if err != nil {
		app.fallDown(op, err)
	}
	app.broker.statsView = statsView
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	client, err := shopify.NewClient(shopify.Config{
		StoreDomain: app.cfg.Shopify.StoreDomain,
		APIVersion:  app.cfg.Shopify.APIVersion,
		AccessToken: app.cfg.Shopify.AccessToken,
		Timeout:     app.cfg.RequestTimeout,
		CacheTTL:    app.cfg.Shopify.CatalogCacheTTL,
	})
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.shopify = client

	if app.cfg.SQLDB != "" {
		sqlDB, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
		if err != nil {
			app.fallDown(op, err)
		}
		app.outbound.sqlDB = &sqlDB
		app.outbound.cartStore = storage.NewCartSessionsRepository(sqlDB)
	} else {
		slog.Warn("sql_db is not set, cart sessions are kept in memory", "op", op)
		app.outbound.cartStore = storage.NewMemoryCartSessions()
	}

	if app.broker.producer != nil {
		app.outbound.events = app.broker.producer
	} else {
		slog.Warn("broker is not set, storefront events are dropped", "op", op)
		app.outbound.events = kafka.NopEventsProducer{}
	}
}

func (app *App) initCore() {
	shop := app.outbound.shopify
	carts := shopify.NewCarts(shop)

	app.core.catalog = service.NewCatalog(shopify.NewCatalog(shop), app.outbound.events)
	app.core.carts = service.NewCart(carts, app.outbound.events)
	app.core.sessions = cartsession.NewRegistry(app.core.carts, app.outbound.cartStore)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterHealth(mux)
	httphandler.RegisterCatalog(mux, app.core.catalog, app.outbound.shopify)
	httphandler.RegisterCart(mux, app.core.carts)
	httphandler.RegisterSessionCart(mux, app.core.sessions)
	if app.broker.statsView != nil {
		httphandler.RegisterSearchStats(mux, app.broker.statsView)
	}

	handler := httphandler.Session(httphandler.SessionConfig{
		CookieName: app.cfg.Session.CookieName,
		MaxAge:     app.cfg.Session.CookieMaxAge,
		Secure:     app.cfg.Session.CookieSecure,
	}, mux)

	// the facade may call the storefront API up to twice per request
	timeout := 2*app.cfg.RequestTimeout + time.Second
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler, timeout)
}

func (app *App) Run(stopFn context.CancelFunc) {
	if app.broker.statsProc != nil {
		app.wg.Add(2)
		go app.broker.statsProc.Run(app.ctx, stopFn, &app.wg)
		go app.broker.statsView.Run(app.ctx, stopFn, &app.wg)
	}

	go app.core.sessions.RunEviction(app.ctx, evictionInterval, app.cfg.Session.IdleTTL)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)

	if app.broker.statsProc != nil {
		app.broker.statsProc.Close()
		app.broker.statsView.Close()
	}
	if app.broker.producer != nil {
		app.broker.producer.Close()
	}
	if app.outbound.sqlDB != nil {
		app.outbound.sqlDB.Close()
	}

	app.wg.Wait()
	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
