package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"booking-backend/global"
	"booking-backend/initialize"
	"booking-backend/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		global.Logger.Fatal().Err(err).Msg("startup failed")
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewHTTP(app.Cfg.HTTP.Host, app.Cfg.HTTP.Port, app.Router)
	srv.Start()
	global.Logger.Info().Str("addr", srv.Addr()).Msg("http server listening")

	<-ctx.Done()
	global.Logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		global.Logger.Error().Err(err).Msg("http shutdown")
	}
}
