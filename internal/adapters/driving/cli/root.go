// Package cli provides the command-line interface for the ARES lookup tool.
// It is a driving adapter: commands translate terminal input into calls on
// the core lookup service.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ares-tools/ares-cli/internal/adapters/driven/config/file"
	"github.com/ares-tools/ares-cli/internal/adapters/driven/registry/ares"
	"github.com/ares-tools/ares-cli/internal/core/ports/driving"
	"github.com/ares-tools/ares-cli/internal/core/services"
	"github.com/ares-tools/ares-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// lookupService is the wired lookup service. Package-level so tests can
// swap in a mock.
var lookupService driving.LookupService

var verboseFlag bool

// subjectNotFoundMsg is printed for every failed resolution, whatever the
// cause. It deliberately does not say which validation or transport step
// failed; the specific reason is available on --verbose.
const subjectNotFoundMsg = "Subject could not be found.\nCheck the IČO and your network connection."

var rootCmd = &cobra.Command{
	Use:   "ares",
	Short: "Look up Czech economic subjects by IČO",
	Long: `ares resolves Czech business identifiers (IČO) against the public
ARES registry and prints subject information, either as the formal
description used in written communication or as the raw record.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging to stderr")
}

// Execute wires the default services and runs the root command.
func Execute() error {
	if lookupService == nil {
		svc, err := buildLookupService()
		if err != nil {
			return err
		}
		lookupService = svc
	}
	return rootCmd.Execute()
}

// buildLookupService constructs the production service: a TOML config store
// feeding an ARES registry client. Missing config keys fall back to the
// client's built-in defaults.
func buildLookupService() (driving.LookupService, error) {
	store, err := file.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}

	cfg := ares.Config{
		BaseURL: store.GetString(file.KeyRegistryBaseURL),
	}
	if secs := store.GetInt(file.KeyRegistryTimeoutSeconds); secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	logger.Debug("registry base URL: %s", cfg.BaseURL)
	return services.NewLookupService(ares.NewClient(cfg)), nil
}
