package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dyaksa/courier"
	"github.com/dyaksa/courier/client"
	"github.com/dyaksa/courier/config"
)

// RequestOptions holds the flags of the request command.
type RequestOptions struct {
	ConfigPath string
	BaseURL    string
	Token      string
	Language   string
	Data       string
	Form       []string
	Headers    []string
	Timeout    time.Duration
	Output     string
	NoAuth     bool
}

func newRequestCommand() *cobra.Command {
	opts := &RequestOptions{}

	cmd := &cobra.Command{
		Use:   "request METHOD ROUTE",
		Short: "Send one request and print the decoded response",
		Example: `  # GET with a static token
  courier request get /users/me --base-url https://api.example.com --token $TOKEN

  # POST a JSON body
  courier request post /users --data '{"name":"Ada"}'

  # Download a file
  courier request get /reports/42 --output ./downloads/`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runRequest(ctx, cmd.OutOrStdout(), opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "Base URL of the API")
	cmd.Flags().StringVar(&opts.Token, "token", "", "Static bearer token")
	cmd.Flags().StringVar(&opts.Language, "language", "", "Message language (en|ka|sv)")
	cmd.Flags().StringVarP(&opts.Data, "data", "d", "", "JSON request body")
	cmd.Flags().StringArrayVarP(&opts.Form, "form", "F", nil, "Form field key=value, repeatable")
	cmd.Flags().StringArrayVarP(&opts.Headers, "header", "H", nil, "Header 'Key: Value', repeatable")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "Per-request timeout")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Write file responses to this path or directory")
	cmd.Flags().BoolVar(&opts.NoAuth, "no-auth", false, "Send without an Authorization header")

	return cmd
}

func runRequest(ctx context.Context, out io.Writer, opts *RequestOptions, method, route string) error {
	cfg, err := config.LoadWithOverrides(opts.ConfigPath, opts.overrides())
	if err != nil {
		return err
	}

	c, err := client.New(cfg.ClientConfig())
	if err != nil {
		return err
	}

	requestOpts, err := opts.requestOptions()
	if err != nil {
		return err
	}

	res, err := c.Do(ctx, strings.ToUpper(method), route, requestOpts...)
	if err != nil {
		if status := client.StatusCode(err); status != 0 {
			return errors.Wrapf(err, "status %d", status)
		}
		return err
	}

	return writeResult(out, res, opts.Output)
}

func (o *RequestOptions) overrides() map[string]any {
	overrides := make(map[string]any)
	if o.BaseURL != "" {
		overrides["base_url"] = o.BaseURL
	}
	if o.Token != "" {
		overrides["token"] = o.Token
	}
	if o.Language != "" {
		overrides["language"] = o.Language
	}
	return overrides
}

func (o *RequestOptions) requestOptions() ([]courier.RequestOption, error) {
	var opts []courier.RequestOption

	headers, err := parseHeaders(o.Headers)
	if err != nil {
		return nil, err
	}
	if len(headers) > 0 {
		opts = append(opts, client.WithHeaders(headers))
	}

	switch {
	case o.Data != "" && len(o.Form) > 0:
		return nil, errors.New("--data and --form are mutually exclusive")
	case o.Data != "":
		if !json.Valid([]byte(o.Data)) {
			return nil, errors.New("--data is not valid JSON")
		}
		opts = append(opts, client.WithJSON(json.RawMessage(o.Data)))
	case len(o.Form) > 0:
		form, err := parseForm(o.Form)
		if err != nil {
			return nil, err
		}
		opts = append(opts, client.WithForm(form))
	}

	if o.Timeout > 0 {
		opts = append(opts, client.WithTimeout(o.Timeout))
	}
	if o.NoAuth {
		opts = append(opts, client.WithoutAuth())
	}

	return opts, nil
}

func parseHeaders(values []string) (map[string]string, error) {
	headers := make(map[string]string, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, ":")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, errors.Errorf("invalid header %q, want 'Key: Value'", v)
		}
		headers[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return headers, nil
}

func parseForm(values []string) (url.Values, error) {
	form := make(url.Values, len(values))
	for _, v := range values {
		key, value, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("invalid form field %q, want key=value", v)
		}
		form.Add(key, value)
	}
	return form, nil
}

func writeResult(out io.Writer, res *courier.Result, output string) error {
	switch {
	case res.Empty():
		return nil
	case res.Kind == courier.KindJSON:
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, res.JSON, "", "  "); err != nil {
			return errors.Wrap(err, "failed to format JSON response")
		}
		pretty.WriteByte('\n')
		_, err := out.Write(pretty.Bytes())
		return err
	case res.Kind == courier.KindBlob:
		return writeBlob(out, res.Blob, output)
	default:
		_, err := fmt.Fprintln(out, res.Text)
		return err
	}
}

func writeBlob(out io.Writer, blob *courier.Blob, output string) error {
	if output == "" {
		_, err := out.Write(blob.Data)
		return err
	}

	path := output
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		name := filepath.Base(blob.Filename)
		if blob.Filename == "" || name == "." || name == string(filepath.Separator) {
			name = "download"
		}
		path = filepath.Join(output, name)
	}

	if err := os.WriteFile(path, blob.Data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	_, err := fmt.Fprintf(out, "saved %d bytes (%s) to %s\n", len(blob.Data), blob.ContentType, path)
	return err
}
