package cli

import (
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
)

// ProxyOptions holds flags for the proxy command.
type ProxyOptions struct {
	*RootOptions
	Listen string
	Prefix string
}

// NewProxyCommand creates the local development proxy command.
//
// The proxy forwards requests under a local API path prefix to the remote
// store host with the prefix rewritten, and injects the API key so a
// browser frontend never has to carry it.
func NewProxyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProxyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "proxy",
		Short:         "Run the local development proxy to the record store",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProxy(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Listen, "listen", ":8090", "local address to listen on")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "/api", "local path prefix to rewrite")

	return cmd
}

func runProxy(opts *ProxyOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	handler, err := newProxyHandler(cfg.BaseURL, cfg.APIKey, opts.Prefix)
	if err != nil {
		return WrapExitError(ExitCommandError, "proxy", err)
	}

	formatter.Textf("proxying %s%s/* -> %s", opts.Listen, opts.Prefix, cfg.BaseURL)
	srv := &http.Server{
		Addr:         opts.Listen,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return WrapExitError(ExitFailure, "proxy", err)
	}
	return nil
}

// newProxyHandler builds the chi router that rewrites prefix-local paths
// onto the remote store.
func newProxyHandler(baseURL, apiKey, prefix string) (http.Handler, error) {
	target, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	prefix = "/" + strings.Trim(prefix, "/")

	proxy := &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.Out.URL.Path = target.Path + strings.TrimPrefix(pr.In.URL.Path, prefix)
			pr.Out.Host = target.Host
			if apiKey != "" {
				pr.Out.Header.Set("x-apikey", apiKey)
			}
		},
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Handle(prefix+"/*", proxy)
	return r, nil
}
