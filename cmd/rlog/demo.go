package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/rydor/log"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Write one record per level plus a value dump",
	RunE:  runDemo,
}

type deviceInfo struct {
	Name     string
	Memory   uint64
	Features map[string]bool
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	logger.Start()
	defer logger.Close()

	logger.Tracef("demo", "trace record %d", 0)
	logger.Debugf("demo", "debug record %d", 1)
	logger.Infof("demo", "info record %d", 2)
	logger.Warnf("demo", "warn record %d", 3)
	logger.Errorf("demo", "error record %d", 4)
	logger.Fatalf("demo", "fatal record %d (process keeps running)", 5)

	logger.Dump(log.LevelInfo, "demo", deviceInfo{
		Name:     "gpu0",
		Memory:   8 << 30,
		Features: map[string]bool{"geometryShader": true, "tessellation": false},
	})

	if err := logger.Flush(time.Second); err != nil {
		return err
	}
	if path := logger.CurrentFile(); path != "" {
		cmd.Printf("file output: %s\n", path)
	}
	return nil
}
