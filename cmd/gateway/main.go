package main

import (
	"context"
	"os/signal"
	"syscall"

	"pizza-platform/internal/app"
	"pizza-platform/internal/config"
	"pizza-platform/internal/gateway"
	"pizza-platform/pkg/logging"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := logging.New(conf.Env)
	panicIfErr("invalid config", conf.Validate(conf.Gateway, conf.Cors))

	routes := []gateway.Route{
		{Prefix: "/api/auth", Upstream: conf.Gateway.AuthServiceURL + "/api/auth", Timeout: conf.Gateway.ProxyTimeout},
		{Prefix: "/api/menu", Upstream: conf.Gateway.MenuServiceURL + "/api/menu", Timeout: conf.Gateway.ProxyTimeout},
		{Prefix: "/api/orders", Upstream: conf.Gateway.OrderServiceURL + "/api/orders", Timeout: conf.Gateway.ProxyTimeout},
	}

	proxy := gateway.NewProxy(conf.Env, routes,
		gateway.WithRequestInterceptors(gateway.LogRequest(logger)),
		gateway.WithResponseInterceptors(gateway.LogResponse(logger)),
		gateway.WithErrorInterceptors(gateway.LogError(logger)),
	)

	app := app.New(logger, conf)
	app.SetHTTPHandlers(proxy)

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
