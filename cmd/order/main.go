package main

import (
	"context"
	"os/signal"
	"syscall"

	"pizza-platform/internal/app"
	"pizza-platform/internal/config"
	"pizza-platform/internal/events"
	"pizza-platform/internal/handler"
	"pizza-platform/internal/menuclient"
	"pizza-platform/internal/postgres"
	"pizza-platform/internal/repo"
	"pizza-platform/internal/service"
	"pizza-platform/pkg/cache"
	"pizza-platform/pkg/logging"
	"pizza-platform/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := logging.New(conf.Env)
	panicIfErr("invalid config", conf.Validate(conf.Postgres, conf.Kafka, conf.Cache, conf.Gateway, conf.Cors))

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	orderRepo := repo.NewOrderRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	menuClient := menuclient.New(logger, conf.Gateway.MenuServiceURL+"/api/menu", conf.Gateway.ProxyTimeout)
	publisher := events.NewPublisher(conf.Kafka)

	orderService := service.NewOrderService(logger, txManager, orderRepo, menuClient, publisher, orderCache)
	orderHandler := handler.NewOrderHandler(logger, orderService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(orderHandler)
	app.SetClosers(publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	orderCache.StartJanitor(ctx)

	app.Start()
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
