package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"restofresh-web/internal/config"
	"restofresh-web/internal/i18n"
	"restofresh-web/internal/logger"
	"restofresh-web/internal/menu"
	"restofresh-web/internal/notify"
	"restofresh-web/internal/order"
	"restofresh-web/internal/reservation"
	"restofresh-web/internal/restapi"
	"restofresh-web/internal/session"
	"restofresh-web/internal/web"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := restapi.NewClient(cfg.APIBaseURL, nil)

	menuClient := menu.NewClient(api)
	orderClient := order.NewClient(api)
	reservationClient := reservation.NewClient(api)
	booking := reservation.NewBookingService(reservationClient)

	// Notifications for the admin dashboard. The watcher texts follow the
	// site's default language.
	notifications := notify.NewStore(nil)
	tr := i18n.NewStore(nil)

	orderWatcher := notify.NewOrderWatcher(orderClient, notifications, tr, cfg.PollInterval)
	reservationWatcher := notify.NewReservationWatcher(reservationClient, notifications, tr, cfg.PollInterval)
	go orderWatcher.Run(ctx)
	go reservationWatcher.Run(ctx)

	sessions := session.NewManager(cfg.SessionSecret, cfg.DataDir, api)
	go sessions.RunEviction(ctx, time.Hour)
	handler := web.NewHandler(menuClient, orderClient, booking, notifications)
	router := web.NewRouter(handler, sessions, cfg.AdminOrigin)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
