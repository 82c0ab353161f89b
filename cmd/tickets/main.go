package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/you/go-tickets-report/internal/config"
	"github.com/you/go-tickets-report/internal/logging"
	"github.com/you/go-tickets-report/internal/report"
	"github.com/you/go-tickets-report/internal/service"
	"github.com/you/go-tickets-report/internal/sources"
	"go.uber.org/zap"
)

const usage = "please, specify path to ticket information"

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout))
}

func run(ctx context.Context, args []string, stdout io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stdout, usage)
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer func() {
		_ = log.Sync()
	}()

	src := sources.FromArg(args[0])
	svc := service.NewReportService(log, cfg.CityFrom, cfg.CityTo, []sources.Source{src}, cfg.LoadTimeout)
	rep, err := svc.Build(ctx)
	if err != nil {
		log.Error("failed to build report", zap.String("source", src.Name()), zap.Error(err))
		return 1
	}

	if err := report.WriteText(stdout, rep, cfg.Color); err != nil {
		log.Error("failed to write report", zap.Error(err))
		return 1
	}
	return 0
}
