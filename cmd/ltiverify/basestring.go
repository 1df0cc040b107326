package main

import (
	"fmt"

	"github.com/josejalvarezm/lti-launch-validator/internal/oauth"
	"github.com/spf13/cobra"
)

type baseStringOptions struct {
	launchURL          string
	action             string
	params             string
	sharedSecret       string
	tokenSecret        string
	method             string
	keepFileReferences bool
}

func newBaseStringCmd() *cobra.Command {
	opts := &baseStringOptions{}
	cmd := &cobra.Command{
		Use:   "basestring",
		Short: "Print the signature base string of a launch",
		Long: `Print the normalized parameters and the signature base string of a launch.
With --secret, also print the signature the provider expects.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBaseString(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.launchURL, "url", "", "Launch URL (required)")
	cmd.Flags().StringVar(&opts.action, "action", "POST", "HTTP method of the launch")
	cmd.Flags().StringVar(&opts.params, "params", "", "Form-encoded launch parameters (default: read stdin)")
	cmd.Flags().StringVar(&opts.sharedSecret, "secret", "", "Shared secret; prints the expected signature when set")
	cmd.Flags().StringVar(&opts.tokenSecret, "token-secret", "", "Token secret")
	cmd.Flags().StringVar(&opts.method, "method", string(oauth.HMACSHA1), "Signature method: HMAC-SHA1, PLAINTEXT")
	cmd.Flags().BoolVar(&opts.keepFileReferences, "keep-file-references", false, "Sign values starting with @ instead of skipping them")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func runBaseString(cmd *cobra.Command, opts *baseStringOptions) error {
	params, err := readParams(cmd, opts.params)
	if err != nil {
		return err
	}

	baseURL, err := oauth.BaseStringURI(opts.launchURL)
	if err != nil {
		return err
	}
	action, err := oauth.NormalizeAction(opts.action)
	if err != nil {
		return err
	}

	req := oauth.SignatureRequest{
		HTTPMethod: action,
		BaseURL:    baseURL,
		Params:     params,
		Options:    oauth.NormalizeOptions{KeepFileReferences: opts.keepFileReferences},
	}

	out := cmd.OutOrStdout()
	keyStyle.Fprint(out, "normalized: ")
	fmt.Fprintln(out, req.NormalizedParameters())
	keyStyle.Fprint(out, "base string: ")
	fmt.Fprintln(out, req.BaseString())

	if opts.sharedSecret == "" {
		return nil
	}
	method, err := oauth.ParseSignatureMethod(opts.method)
	if err != nil {
		return err
	}
	signature, err := req.Sign(method, opts.sharedSecret, opts.tokenSecret)
	if err != nil {
		return fmt.Errorf("signing launch: %w", err)
	}
	keyStyle.Fprint(out, "signature: ")
	fmt.Fprintln(out, signature)
	return nil
}
