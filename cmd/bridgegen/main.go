// Package main provides the CLI entrypoint for bridgegen.
//
// bridgegen is a codegen tool that:
//   - Scans an Android (Kotlin) and an iOS (Swift) source tree for
//     bridge-annotated classes
//   - Merges both platforms into one symbol model
//   - Generates typed Dart proxies over the platform channels
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose     bool
	projectFile string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "bridgegen",
	Short: "bridgegen - typed Dart proxies for annotated native classes",
	Long: `bridgegen scans the Android (Kotlin) and iOS (Swift) source trees of a
Flutter project for bridge-annotated classes and generates one Dart file
of typed proxy classes. Calls go over the method channel; members taking
an event sink become broadcast streams over event channels.

The project is described by a bridgegen.yaml file naming both source
roots and the output path. Run "bridgegen init" to create one.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&projectFile, "project", "p", "bridgegen.yaml", "path to the project file")

	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
