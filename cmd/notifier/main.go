package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"

	"server/internal/infra"
	"server/internal/notify"
)

const (
	notifyChannel        = "contribution_created"
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := &notify.Dispatcher{
		FromNumber:         cfg.TwilioFromNumber,
		DefaultCountryCode: cfg.DefaultCountryCode,
		Logger:             logger,
	}
	// Without credentials the notifier still runs; every event then reports
	// a credential failure, matching the per-invocation contract.
	sender, err := notify.NewTwilioClient(notify.TwilioOptions{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
	})
	if err != nil {
		logger.Warn().Err(err).Msg("notifier: twilio client not configured")
	} else {
		dispatcher.Sender = sender
	}

	// lib/pq's listener reconnects on its own; pgx stays in charge of
	// regular queries elsewhere.
	listener := pq.NewListener(cfg.DatabaseURL, minReconnectInterval, maxReconnectInterval,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				logger.Error().Err(err).Int("event", int(ev)).Msg("notifier: listener event")
			}
		})
	defer func() {
		_ = listener.Close()
	}()

	if err := listener.Listen(notifyChannel); err != nil {
		logger.Fatal().Err(err).Str("channel", notifyChannel).Msg("notifier: listen failed")
	}
	logger.Info().Str("channel", notifyChannel).Msg("notifier: started")

	if err := run(ctx, listener, dispatcher, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("notifier: stopped with error")
	}
	logger.Info().Msg("notifier: stopped")
}

func run(ctx context.Context, listener *pq.Listener, dispatcher *notify.Dispatcher, logger infra.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case n := <-listener.Notify:
			if n == nil {
				// Reconnect marker; notifications during the gap are lost,
				// which the contract accepts.
				logger.Warn().Msg("notifier: connection re-established")
				continue
			}
			handle(ctx, dispatcher, logger, []byte(n.Extra))
		case <-time.After(pingInterval):
			if err := listener.Ping(); err != nil {
				logger.Error().Err(err).Msg("notifier: ping failed")
			}
		}
	}
}

func handle(ctx context.Context, dispatcher *notify.Dispatcher, logger infra.Logger, payload []byte) {
	ev, err := notify.DecodeEvent(payload)
	if err != nil {
		logger.Warn().Err(err).Msg("notifier: bad event payload")
		return
	}
	result := dispatcher.Dispatch(ctx, ev)
	logger.Info().
		Int("status", result.StatusCode()).
		Str("sid", result.MessageSID).
		Str("reason", result.Reason).
		Msg("notifier: dispatch finished")
}
