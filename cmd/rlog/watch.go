package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rydor/log"
)

var tickInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Log periodically and re-apply the config file whenever it changes",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&tickInterval, "interval", time.Second, "interval between sample records")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		return fmt.Errorf("watch requires --config")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	logger.Start()
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := log.NewConfigWatcher(logger, configPath)
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	defer watcher.Stop()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			logger.Infof("watch", "stopping after %d ticks, %d reloads", n-1, watcher.Reloads())
			return nil
		case <-ticker.C:
			logger.Debugf("watch", "tick %d", n)
			logger.Infof("watch", "tick %d level=%s", n, logger.GetLevel())
		}
	}
}
