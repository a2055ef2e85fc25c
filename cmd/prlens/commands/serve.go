package commands

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/prlens/prlens/internal/aggregate"
	"github.com/prlens/prlens/internal/config"
	"github.com/prlens/prlens/internal/dashboard"
	"github.com/prlens/prlens/internal/eventlog"
	"github.com/prlens/prlens/internal/observability"
)

const (
	serveCmdUse   = "serve <event-log>"
	serveCmdShort = "Serve the dashboard over HTTP"
	serveArgCount = 1
)

// Server timeout constants for the dashboard HTTP server.
const (
	serverReadTimeout  = 10 * time.Second
	serverWriteTimeout = 60 * time.Second
	serverIdleTimeout  = 120 * time.Second
)

// NewServeCommand creates the serve subcommand.
func NewServeCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		theme      string
		ff         filterFlags
	)

	cmd := &cobra.Command{
		Use:   serveCmdUse,
		Short: serveCmdShort,
		Long: `Serve renders the dashboard on every request, so edits to the event
log show up on refresh. /healthz and /metrics expose liveness and
Prometheus metrics.`,
		Args: cobra.ExactArgs(serveArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, args[0], configPath, addr, theme, &ff)
		},
	}

	cmd.Flags().StringVar(&configPath, flagConfig, "", "path to config file (default .prlens.yaml)")
	cmd.Flags().StringVar(&addr, flagAddr, "", "listen address (default "+config.DefaultServeAddr+")")
	cmd.Flags().StringVar(&theme, flagTheme, "", "dashboard theme (light|dark)")
	ff.register(cmd)

	return cmd
}

func runServe(cmd *cobra.Command, logPath, configPath, addr, theme string, ff *filterFlags) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed(flagAddr) {
		cfg.Serve.Addr = addr
	}

	if cmd.Flags().Changed(flagTheme) {
		cfg.Dashboard.Theme = theme

		err = cfg.Validate()
		if err != nil {
			return err
		}
	}

	filters := ff.apply(cmd.Flags(), cfg.AggregateFilters())

	// Fail fast on an unreadable log before binding the socket.
	_, err = eventlog.Load(logPath)
	if err != nil {
		return err
	}

	handler, err := newServeMux(logPath, dashboard.Theme(cfg.Dashboard.Theme), filters)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Serve.Addr,
		Handler:      handler,
		ReadTimeout:  serverReadTimeout,
		WriteTimeout: serverWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	slog.Info("serving dashboard", "addr", cfg.Serve.Addr)

	err = srv.ListenAndServe()
	if err != nil {
		return fmt.Errorf("serve dashboard: %w", err)
	}

	return nil
}

// newServeMux wires the dashboard handler together with the health and
// metrics endpoints, instrumented with request metrics.
func newServeMux(logPath string, theme dashboard.Theme, filters aggregate.Filters) (http.Handler, error) {
	metrics, err := observability.NewMetrics()
	if err != nil {
		return nil, err
	}

	requestMetrics, err := observability.NewRequestMetrics(metrics.Meter)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/healthz", observability.HealthHandler())
	mux.Handle("/metrics", metrics.Handler)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)

			return
		}

		serveDashboard(w, logPath, theme, filters)
	})

	return requestMetrics.Middleware(mux), nil
}

func serveDashboard(w http.ResponseWriter, logPath string, theme dashboard.Theme, filters aggregate.Filters) {
	doc, err := eventlog.Load(logPath)
	if err != nil {
		slog.Error("load event log", "path", logPath, "error", err)
		http.Error(w, "failed to load event log", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	page := dashboard.Build(doc, filters, theme)

	err = page.Render(w)
	if err != nil {
		slog.Error("render dashboard", "error", err)
	}
}
