package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rydor/log"
)

var (
	producers   int
	perProducer int
	maxMessage  int
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Write from many goroutines and report throughput and rotations",
	RunE:  runStress,
}

func init() {
	stressCmd.Flags().IntVar(&producers, "producers", 16, "number of producing goroutines")
	stressCmd.Flags().IntVar(&perProducer, "records", 10000, "records per producer")
	stressCmd.Flags().IntVar(&maxMessage, "max-message", 256, "maximum message length")
}

var stressLevels = []log.Level{
	log.LevelDebug,
	log.LevelInfo,
	log.LevelWarn,
	log.LevelError,
}

func generateRandomMessage(r *rand.Rand, size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[r.Intn(len(chars))])
	}
	return sb.String()
}

func runStress(cmd *cobra.Command, args []string) error {
	if producers <= 0 || perProducer <= 0 || maxMessage <= 0 {
		return fmt.Errorf("producers, records and max-message must be positive")
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	logger.Start()
	defer logger.Close()

	start := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	for p := 0; p < producers; p++ {
		g.Go(func() error {
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(p)))
			category := fmt.Sprintf("producer-%02d", p)
			for i := 0; i < perProducer; i++ {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				level := stressLevels[r.Intn(len(stressLevels))]
				logger.Write(level, category, generateRandomMessage(r, 1+r.Intn(maxMessage)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	produced := time.Since(start)

	logger.Shutdown()
	elapsed := time.Since(start)

	stats := logger.Stats()
	cmd.Printf("produced %d calls in %v, drained in %v\n", producers*perProducer, produced, elapsed)
	cmd.Printf("processed=%d rotations=%d rotation_index=%d dropped_file_lines=%d\n",
		stats.Processed, stats.Rotations, stats.RotationIndex, stats.DroppedFileLines)
	return nil
}
