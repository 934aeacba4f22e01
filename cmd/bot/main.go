package main

import (
	"context"
	"fmt"
	"mahjong-rooms/dispatch"
	"mahjong-rooms/domain"
	"mahjong-rooms/gateway"
	"mahjong-rooms/internal"
	"mahjong-rooms/observability"
	"mahjong-rooms/runtime"
	"mahjong-rooms/services"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper: call run() and hand the
	// exit code to the OS, so deferred cleanups always execute.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	targets, err := config.Groups()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Platform gateway
	gw, err := gateway.DialWebsocket(ctx, config.GatewayURL, config.DeliveryTimeout, logger)
	if err != nil {
		return exitRuntime, fmt.Errorf("gateway dial failed: %w", err)
	}
	defer func() {
		logger.Info("Closing gateway...")
		_ = gw.Close()
	}()

	// 4. Core wiring
	monitoring := observability.NewMonitoringManager()
	registry := runtime.NewRegistry(logger, config.PermanentRooms, config.DefaultCapacity)
	membership := services.NewMembershipService(logger, registry, monitoring)
	creation := services.NewCreationService(logger, registry, monitoring)
	dispatcher := dispatch.NewDispatcher(logger, membership, creation, registry)

	scheduler := runtime.NewScheduler(logger, registry, gw, dispatch.StatusText, monitoring, runtime.SchedulerConfig{
		BroadcastTargets: targets,
		PushWindowStart:  config.PushWindowStart,
		PushWindowEnd:    config.PushWindowEnd,
		SweepInterval:    config.SweepInterval,
		RoomTTL:          config.RoomTTL,
		MonitorInterval:  config.MonitorInterval,
		RestartInterval:  config.RestartInterval,
	})
	scheduler.Start(ctx)
	defer scheduler.Stop(config.StopTimeout)

	// 5. Inbound loop: every group line goes through the dispatcher and
	// the rendered reply goes back out on the same socket. Delivery
	// failures are logged, never fatal.
	logger.Info("Bot ready", "targets", len(targets))

	// Closing the socket is what unblocks the pending read on shutdown.
	go func() {
		<-ctx.Done()
		_ = gw.Close()
	}()

	err = gw.Listen(ctx, func(msg domain.IncomingMessage) {
		reply := dispatcher.Handle(msg)
		if reply.IsZero() {
			return
		}
		if sendErr := gw.Send(ctx, msg.GroupID, reply); sendErr != nil {
			monitoring.IncrDeliveryFailures()
			logger.Error("Reply delivery failed", "group", msg.GroupID, "err", sendErr)
		}
	})

	if ctx.Err() != nil {
		logger.Info("Shutting down on signal")
		return exitOK, nil
	}
	return exitRuntime, err
}
