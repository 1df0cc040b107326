package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
	"github.com/josejalvarezm/lti-launch-validator/internal/oauth"
	"github.com/spf13/cobra"
)

// readParams returns the launch parameters from --params, or from stdin when
// the flag is empty. Both take an application/x-www-form-urlencoded body.
func readParams(cmd *cobra.Command, raw string) (domain.Params, error) {
	if raw == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading parameters from stdin: %w", err)
		}
		raw = strings.TrimSpace(string(data))
	}
	if raw == "" {
		return nil, fmt.Errorf("no launch parameters given: use --params or pipe them on stdin")
	}
	return oauth.ParseQueryString(raw), nil
}
