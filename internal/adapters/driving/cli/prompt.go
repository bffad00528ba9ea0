package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ares-tools/ares-cli/internal/core/domain"
	"github.com/ares-tools/ares-cli/internal/logger"
)

// quitSentinels terminate the prompt loop. Matched case-insensitively
// against the whitespace-stripped input, so an empty line quits too.
// The function-call spellings cover users typing Python-style exit().
var quitSentinels = map[string]struct{}{
	"":        {},
	"q":       {},
	"quit":    {},
	"quit()":  {},
	"exit":    {},
	"exit()":  {},
	"abort":   {},
	"abort()": {},
	"0":       {},
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Interactively look up subjects by IČO",
	Long: `Repeatedly prompts for a business identifier and prints the formal
description of the matching subject. An empty line or any of
q, quit, exit, abort (with or without parentheses) or 0 ends the session.`,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, _ []string) error {
	if lookupService == nil {
		return errors.New("lookup service not configured")
	}

	ctx := context.Background()
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	for {
		fmt.Fprint(out, "IČO: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		input := domain.StripWhitespace(scanner.Text())
		if _, quit := quitSentinels[strings.ToLower(input)]; quit {
			return nil
		}

		desc, err := lookupService.Describe(ctx, input)
		if err != nil {
			logger.Debug("prompt lookup failed: %v", err)
			fmt.Fprintln(out, subjectNotFoundMsg)
			continue
		}

		fmt.Fprintln(out, desc)
	}
}
