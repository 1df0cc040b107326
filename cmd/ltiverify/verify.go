package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/josejalvarezm/lti-launch-validator/internal/domain"
	"github.com/josejalvarezm/lti-launch-validator/internal/lti"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type verifyOptions struct {
	consumerKey        string
	sharedSecret       string
	launchURL          string
	action             string
	tolerance          time.Duration
	now                int64
	params             string
	format             string
	keepFileReferences bool
}

type verifyReport struct {
	Valid      bool                `json:"valid" yaml:"valid"`
	Status     int                 `json:"status" yaml:"status"`
	Message    string              `json:"message" yaml:"message"`
	Parameters map[string][]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

var (
	validStyle   = color.New(color.Bold, color.FgHiGreen)
	invalidStyle = color.New(color.Bold, color.FgHiRed)
	keyStyle     = color.New(color.FgHiBlue)
)

func newVerifyCmd() *cobra.Command {
	opts := &verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Validate a signed launch",
		Long: `Validate a signed LTI launch against a consumer key and shared secret.

Parameters are read from --params or stdin as a form-encoded string, e.g.
  oauth_consumer_key=key&oauth_timestamp=1700000000&...&oauth_signature=...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.consumerKey, "key", "", "Consumer key (required)")
	cmd.Flags().StringVar(&opts.sharedSecret, "secret", "", "Shared secret (required)")
	cmd.Flags().StringVar(&opts.launchURL, "url", "", "Launch URL the consumer signed (required)")
	cmd.Flags().StringVar(&opts.action, "action", lti.DefaultAction, "HTTP method of the launch")
	cmd.Flags().DurationVar(&opts.tolerance, "tolerance", lti.DefaultTimestampTolerance, "Maximum age of oauth_timestamp")
	cmd.Flags().Int64Var(&opts.now, "now", 0, "Validate as of this unix time instead of the current time")
	cmd.Flags().StringVar(&opts.params, "params", "", "Form-encoded launch parameters (default: read stdin)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text, json, yaml")
	cmd.Flags().BoolVar(&opts.keepFileReferences, "keep-file-references", false, "Sign values starting with @ instead of skipping them")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("secret")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func runVerify(cmd *cobra.Command, opts *verifyOptions) error {
	params, err := readParams(cmd, opts.params)
	if err != nil {
		return err
	}

	cfg := lti.Config{
		LaunchURL:          opts.launchURL,
		Action:             opts.action,
		TimestampTolerance: opts.tolerance,
		KeepFileReferences: opts.keepFileReferences,
	}
	if opts.now != 0 {
		now := time.Unix(opts.now, 0)
		cfg.Now = func() time.Time { return now }
	}

	result := lti.NewValidator(opts.consumerKey, opts.sharedSecret, cfg).Validate(params)
	report := verifyReport{
		Valid:      result.IsSuccess(),
		Status:     result.StatusCode(),
		Message:    result.Message(),
		Parameters: result.Parameters(),
	}

	if err := writeReport(cmd.OutOrStdout(), opts.format, report); err != nil {
		return err
	}
	if !result.IsSuccess() {
		return fmt.Errorf("launch rejected: %w", result.Err())
	}
	return nil
}

func writeReport(w io.Writer, format string, report verifyReport) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(report); err != nil {
			return err
		}
		return encoder.Close()
	case "text":
		writeReportText(w, report)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func writeReportText(w io.Writer, report verifyReport) {
	if report.Valid {
		validStyle.Fprintf(w, "VALID")
	} else {
		invalidStyle.Fprintf(w, "INVALID")
	}
	fmt.Fprintf(w, " (%d) %s\n", report.Status, report.Message)

	params := domain.Params(report.Parameters)
	for _, key := range params.Keys() {
		for _, value := range params[key] {
			keyStyle.Fprintf(w, "  %s", key)
			fmt.Fprintf(w, " = %s\n", value)
		}
	}
}
