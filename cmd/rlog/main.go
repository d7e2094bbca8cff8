// Command rlog drives the logger from the command line: a level demo,
// a concurrent stress run with rotation and a config-file watch mode.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rydor/log"
)

var (
	configPath string
	levelFlag  string
	fileFlag   string
	maxSize    string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:           "rlog",
	Short:         "Exercise the asynchronous logger",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file with a [log] table")
	rootCmd.PersistentFlags().StringVarP(&levelFlag, "level", "l", "", "minimum level (trace, debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "log file or directory")
	rootCmd.PersistentFlags().StringVar(&maxSize, "max-size", "", "rotation threshold, e.g. 64KB or 5MB")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colors on the console")

	rootCmd.AddCommand(demoCmd, stressCmd, watchCmd)
}

// newLogger builds a logger from the config file, then applies flag overrides
func newLogger() (*log.Logger, error) {
	cfg := log.DefaultConfig()
	if configPath != "" {
		loaded, err := log.NewConfigFromFile(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logger := log.NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	var overrides []string
	if levelFlag != "" {
		overrides = append(overrides, "level="+levelFlag)
	}
	if fileFlag != "" {
		overrides = append(overrides, "file="+fileFlag)
	}
	if maxSize != "" {
		overrides = append(overrides, "max_file_size="+maxSize)
	}
	if noColor {
		overrides = append(overrides, "console_color=false")
	}
	if len(overrides) > 0 {
		if err := logger.ApplyOverride(overrides...); err != nil {
			return nil, err
		}
	}
	return logger, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rlog: %v\n", err)
		os.Exit(1)
	}
}
