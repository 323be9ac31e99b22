package main

import (
	"context"
	"os/signal"
	"syscall"

	"pizza-platform/internal/app"
	"pizza-platform/internal/config"
	"pizza-platform/internal/handler"
	"pizza-platform/internal/postgres"
	"pizza-platform/internal/repo"
	"pizza-platform/internal/service"
	"pizza-platform/pkg/logging"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := logging.New(conf.Env)
	panicIfErr("invalid config", conf.Validate(conf.Postgres, conf.JWT, conf.Cors))

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	userRepo := repo.NewUserRepo(db)
	authService := service.NewAuthService(logger, userRepo, conf.JWT)
	authHandler := handler.NewAuthHandler(logger, authService)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(authHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

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
