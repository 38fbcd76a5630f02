package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-resolver-service/internal/config"
	"video-resolver-service/internal/gateway"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Str("service", "video-resolver-service").Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(lvl)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		rdb = redis.NewClient(opt)
		defer rdb.Close()
	}

	var cookies gateway.CookieSource
	switch {
	case cfg.Cookies.RedisKey != "":
		cookies = gateway.NewRedisCookies(rdb, cfg.Cookies.RedisKey)
	case cfg.Cookies.File != "":
		cookies = gateway.FileCookies{Path: cfg.Cookies.File}
	}

	ex := gateway.NewYtDlpExtractor(cfg.YtDlpPath, cookies)
	res := gateway.NewResolver(gateway.Feeds{Home: cfg.Feeds.Home, Trending: cfg.Feeds.Trending}, cfg.SearchLimit)
	srv := gateway.NewServer(ex, res, cookies, log)

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(gateway.RouterOptions{Timeout: cfg.RequestTimeout, AllowedOrigin: cfg.AllowedOrigin}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	log.Info().
		Str("addr", httpSrv.Addr).
		Str("ytdlp", cfg.YtDlpPath).
		Bool("cookies", cookies != nil).
		Msg("video-resolver-service listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("video-resolver-service")
	}
}
