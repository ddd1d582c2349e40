package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/delivio/docs"
	"github.com/SergeyBogomolovv/delivio/internal/app"
	"github.com/SergeyBogomolovv/delivio/internal/catalog"
	"github.com/SergeyBogomolovv/delivio/internal/config"
	"github.com/SergeyBogomolovv/delivio/internal/handler"
	"github.com/SergeyBogomolovv/delivio/internal/migrate"
	"github.com/SergeyBogomolovv/delivio/internal/postgres"
	"github.com/SergeyBogomolovv/delivio/internal/publisher"
	"github.com/SergeyBogomolovv/delivio/internal/repo"
	"github.com/SergeyBogomolovv/delivio/internal/service"
	"github.com/SergeyBogomolovv/delivio/pkg/cache"
	"github.com/SergeyBogomolovv/delivio/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Delivio API
// @version         1.0
// @description     Сравнение тарифов доставки, заказы и обратная связь
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.Migrate {
		panicIfErr("failed to migrate db", migrate.Up(ctx, db.DB))
		logger.Info("migrations applied")
	}

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	sessions := cache.NewLRU(conf.Session.Capacity, conf.Session.TTL)

	catalogService := catalog.NewService(logger, catalog.NewClient(conf.Catalog.BaseURL, conf.Catalog.Timeout), sessions)
	orderStore := service.NewOrderStore(logger, txManager, pgRepo)

	var pub interface {
		service.Publisher
		app.Closer
	} = publisher.NewNoop(logger)
	if conf.Kafka.Enabled {
		pub = publisher.NewKafkaPublisher(conf.Kafka)
	}
	feedbackService := service.NewFeedbackService(logger, pgRepo, pub)

	handler.RegisterMetrics()
	httpHandler := handler.NewHTTPHandler(logger, catalogService, orderStore, feedbackService)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetStarters(sessions, orderStore)
	app.SetClosers(pub)
	if conf.Kafka.Enabled {
		app.SetConsumers(handler.NewKafkaHandler(logger, conf.Kafka, feedbackService))
	}

	panicIfErr("failed to start app", app.Start(ctx))

	select {
	case <-ctx.Done():
	case err := <-app.Errors():
		logger.Error("http server stopped", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
