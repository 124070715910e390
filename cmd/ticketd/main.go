package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/ticketchain7000-backend/internal/metrics"
	"github.com/goodnatureofminers/ticketchain7000-backend/internal/ticket/service"
	"github.com/goodnatureofminers/ticketchain7000-backend/internal/transport"
)

type config struct {
	Addr              string        `long:"addr" env:"TICKETD_ADDR" description:"HTTP listen address" default:":8000"`
	Difficulty        int           `long:"difficulty" env:"TICKETD_DIFFICULTY" description:"leading zero hex characters required of block hashes" default:"2"`
	AutoMine          bool          `long:"auto-mine" env:"TICKETD_AUTO_MINE" description:"mine pending transactions in the background"`
	AutoMineInterval  time.Duration `long:"auto-mine-interval" env:"TICKETD_AUTO_MINE_INTERVAL" description:"flush interval for the auto-miner" default:"10s"`
	AutoMineThreshold int           `long:"auto-mine-threshold" env:"TICKETD_AUTO_MINE_THRESHOLD" description:"pending pool size that triggers an immediate mine" default:"5"`
	AutoMineRate      int           `long:"auto-mine-rate" env:"TICKETD_AUTO_MINE_RATE" description:"maximum mines per second" default:"1"`
	Demo              bool          `long:"demo" env:"TICKETD_DEMO" description:"run the demo flow at startup"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("ticketd failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	ledger, err := service.NewLedger(cfg.Difficulty, logger, metrics.NewLedger())
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}

	if cfg.Demo {
		if err := demoFlow(ctx, ledger, logger); err != nil {
			return fmt.Errorf("demo flow: %w", err)
		}
	}

	handler, err := transport.NewTicketHandler(ledger, logger)
	if err != nil {
		return fmt.Errorf("init http handler: %w", err)
	}
	stream := transport.NewBlockStream(ledger.Mined(), logger)
	go stream.Run(ctx)

	if cfg.AutoMine {
		miner, err := service.NewAutoMiner(ledger, cfg.AutoMineInterval, cfg.AutoMineThreshold, cfg.AutoMineRate, logger)
		if err != nil {
			return fmt.Errorf("init auto-miner: %w", err)
		}
		go func() {
			if runErr := miner.Run(ctx); runErr != nil && !errors.Is(runErr, context.Canceled) {
				logger.Error("auto-miner stopped", zap.Error(runErr))
			}
		}()
	}

	mux := http.NewServeMux()
	handler.Register(mux)
	mux.HandleFunc("GET /ws", stream.Handle)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadHeaderTimeout: 5 * time.Second,
		// No read/write timeouts: websocket subscribers hold long-lived
		// connections.
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting HTTP server",
		zap.String("addr", cfg.Addr),
		zap.Int("difficulty", cfg.Difficulty),
		zap.Bool("autoMine", cfg.AutoMine),
	)
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// demoFlow walks one ticket through its whole lifecycle, mining a block after
// each step, and logs the resulting state.
func demoFlow(ctx context.Context, ledger *service.Ledger, logger *zap.Logger) error {
	logger = logger.Named("demo")

	mine := func(step string) error {
		block, err := ledger.Mine(ctx)
		if err != nil {
			return fmt.Errorf("mine after %s: %w", step, err)
		}
		logger.Info("mined block",
			zap.String("step", step),
			zap.Uint64("index", block.Index),
			zap.String("hash", block.Hash),
		)
		return nil
	}

	ticketID := ledger.Issue("Alice", "Rock Concert")
	logger.Info("issued ticket", zap.String("ticketID", ticketID), zap.String("owner", "Alice"))
	if err := mine("issue"); err != nil {
		return err
	}

	if !ledger.Transfer(ticketID, "Bob") {
		return fmt.Errorf("transfer rejected for ticket %s", ticketID)
	}
	if err := mine("transfer"); err != nil {
		return err
	}

	if !ledger.Redeem(ticketID) {
		return fmt.Errorf("redeem rejected for ticket %s", ticketID)
	}
	if err := mine("redeem"); err != nil {
		return err
	}

	ticket, ok := ledger.Verify(ticketID)
	if !ok {
		return fmt.Errorf("ticket %s missing after demo", ticketID)
	}
	logger.Info("final ticket state",
		zap.String("ticketID", ticketID),
		zap.String("owner", ticket.Owner),
		zap.String("status", string(ticket.Status)),
		zap.String("event", ticket.Event),
		zap.Int("chainLength", len(ledger.Blocks())),
	)
	return nil
}
