package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/blocknews-net/herodotus/internal/entities"
	"github.com/blocknews-net/herodotus/internal/events"
	"github.com/blocknews-net/herodotus/internal/ledger"
	mm "github.com/blocknews-net/herodotus/internal/middleware"
	"github.com/blocknews-net/herodotus/internal/server"
	"github.com/blocknews-net/herodotus/internal/service/impl"
	"github.com/blocknews-net/herodotus/internal/storage/postgres"
	"github.com/blocknews-net/herodotus/internal/token"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host string `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port int    `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on for insecure connections, defaults to a random value"`

	RequestTimeout time.Duration `long:"http.request_timeout" env:"HTTP_REQUEST_TIMEOUT" default:"45s" description:"request processing timeout"`
	WriteRateEvery time.Duration `long:"http.write_rate_every" env:"HTTP_WRITE_RATE_EVERY" default:"500ms" description:"interval for refilling a client's write rate limit"`
	WriteRateBurst int           `long:"http.write_rate_burst" env:"HTTP_WRITE_RATE_BURST" default:"10" description:"write rate limit burst per client"`

	Postgres                   string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMaxOpenConnections int    `long:"postgres.max_open_connections" env:"POSTGRES_MAX_OPEN_CONNECTIONS" default:"0" description:"postgres maximal open connections count, 0 means unlimited"`
	PostgresMaxIdleConnections int    `long:"postgres.max_idle_connections" env:"POSTGRES_MAX_IDLE_CONNECTIONS" default:"5" description:"postgres maximal idle connections count"`
	PostgresMigrations         string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`

	Owner          string `long:"ledger.owner" env:"LEDGER_OWNER" required:"true" description:"address of the ledger and token registry owner"`
	SFTURI         string `long:"sft.uri" env:"SFT_URI" default:"https://blocknews.net/sft/{id}.json" description:"uri template for reward token metadata"`
	SFTFirstPeriod uint32 `long:"sft.first_period" env:"SFT_FIRST_PERIOD" default:"202312" description:"first mintable reward period"`
	SFTLastPeriod  uint32 `long:"sft.last_period" env:"SFT_LAST_PERIOD" default:"202612" description:"last mintable reward period"`

	LogLevel string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Herodotus"
	parser.LongDescription = "Herodotus"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	logrus.Info("service started")
	logrus.Infof("%+v", opts)

	owner, err := entities.ParseIdentity(opts.Owner)
	if err != nil {
		logrus.WithError(err).Fatal("failed to parse owner address")
	}
	if owner.IsZero() {
		logrus.Fatal("owner address must not be zero")
	}

	db := mustGetDB()

	journal := postgres.New(db)

	log := events.NewLog(nil)
	tokens := token.New(owner, entities.Period(opts.SFTFirstPeriod), entities.Period(opts.SFTLastPeriod), opts.SFTURI, log)
	l := ledger.New(owner, tokens, log, time.Now)

	head, err := impl.Replay(context.Background(), journal, l, tokens)
	if err != nil {
		logrus.WithError(err).Fatal("failed to replay journal")
	}
	logrus.Infof("journal replayed up to seq %d", head)

	s := impl.New(l, tokens, log, journal)

	limiter := mm.NewRateLimiter(opts.WriteRateEvery, opts.WriteRateBurst)
	defer limiter.Close()

	r := chi.NewMux()
	server.SetupRouter(s, r, opts.RequestTimeout, limiter)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		select {
		case s := <-sigs:
			logrus.Infof("terminating by %s signal", s)
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Error("failed to shutdown server gracefully")
		}

		cancel()

		return errTerminated
	})

	logrus.Infof("listening on %s", srv.Addr)

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}
	db.SetMaxOpenConns(opts.PostgresMaxOpenConnections)
	db.SetMaxIdleConns(opts.PostgresMaxIdleConnections)

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch v, d, err := migrator.Version(); err {
	case nil:
		logrus.Infof("database version %d with dirty state %t", v, d)
	case migrate.ErrNilVersion:
		logrus.Info("database version: nil")
	default:
		logrus.WithError(err).Fatal("failed to get version")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
