package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ares-tools/ares-cli/internal/logger"
)

var lookupJSON bool

var lookupCmd = &cobra.Command{
	Use:   "lookup [ico]",
	Short: "Resolve an IČO to subject information",
	Long: `Resolves a business identifier against the ARES registry.
The identifier may omit leading zeros; it is zero-padded to eight digits
before the lookup. Prints the formal description of the subject, or the
raw record with --json.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().BoolVar(&lookupJSON, "json", false, "output the raw subject record as JSON")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	ctx := context.Background()

	out := cmd.OutOrStdout()

	if lookupJSON {
		subject, err := lookupService.LookupRaw(ctx, args[0])
		if err != nil {
			logger.Debug("lookup failed: %v", err)
			fmt.Fprintln(out, subjectNotFoundMsg)
			return nil
		}

		data, err := json.MarshalIndent(subject, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal subject: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	desc, err := lookupService.Describe(ctx, args[0])
	if err != nil {
		logger.Debug("lookup failed: %v", err)
		fmt.Fprintln(out, subjectNotFoundMsg)
		return nil
	}

	fmt.Fprintln(out, desc)
	return nil
}
