// Command tabpager shows a tab strip over horizontally paged content in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tabpager/internal/config"
	"tabpager/internal/logging"
	"tabpager/internal/metrics"
	"tabpager/internal/paging"
	"tabpager/internal/trace"
	"tabpager/internal/ui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"initial":      "pager.initial_index",
	"log-level":    "log.level",
	"log-file":     "log.file",
	"metrics-addr": "metrics.addr",
}

func newRootCmd() *cobra.Command {
	var cfgPath string
	cmd := &cobra.Command{
		Use:   "tabpager",
		Short: "Tab strip over horizontally paged content",
		Long: `tabpager shows a row of tabs above pages laid out side by side.
Click a tab or press its number to animate to it, drag with [ ] or the mouse
wheel, and let go to snap to the nearest page.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, cfgPath)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfgPath, "config", "", "config file (default $TABPAGER_CONFIG or ~/.config/tabpager/config.toml)")
	f.Int("initial", 0, "index of the initially selected page")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
	f.String("log-file", "", "append logs to this file (default: discard)")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address, e.g. :9090")
	return cmd
}

// loadConfig layers flags over env, the config file and defaults.
func loadConfig(cmd *cobra.Command, cfgPath string) (config.Config, error) {
	v := config.New(cfgPath)
	for flag, key := range flagKeys {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return config.Config{}, fmt.Errorf("bind --%s: %w", flag, err)
		}
	}
	return config.Load(v)
}

func run(ctx context.Context, cfg config.Config) error {
	out, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer out.Close()
	logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.Log.Level),
		Pretty: cfg.Log.Pretty,
		Output: out,
	})
	logger := logging.NewLogger("main")

	activity := newActivityPage()
	observers := []paging.Observer{
		logging.NewObserver(logging.NewLogger("paging")),
		activity,
	}

	if cfg.Metrics.Addr != "" {
		collector := metrics.NewCollector()
		observers = append(observers, collector)
		srv := &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           collector.Handler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Str("addr", cfg.Metrics.Addr).Msg("metrics server failed")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info().Str("addr", cfg.Metrics.Addr).Msg("serving metrics")
	}

	provider, err := trace.NewOTLPProvider(ctx)
	if err != nil {
		return fmt.Errorf("otlp exporter: %w", err)
	}
	if provider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				logger.Warn().Err(err).Msg("flush traces")
			}
		}()
		observers = append(observers, trace.NewTransitionTracer(provider))
	}

	anim := ui.AnimationConfig{
		FPS:         cfg.Animation.FPS,
		Frequency:   cfg.Animation.Frequency,
		Damping:     cfg.Animation.Damping,
		SettleDelay: cfg.Animation.SettleDelay,
	}
	pager, err := ui.NewPagerView(demoPages(activity), cfg.Pager.InitialIndex, cfg.PagingConfig(), anim,
		paging.WithObserver(paging.NewMultiObserver(observers...)))
	if err != nil {
		return fmt.Errorf("configure pager: %w", err)
	}

	logger.Info().
		Int("pages", pager.Coordinator().PageCount()).
		Int("initial", cfg.Pager.InitialIndex).
		Bool("handles_viewport_externally", cfg.Pager.HandlesViewportExternally).
		Msg("starting")

	p := tea.NewProgram(ui.NewAppModel(pager).AsTeaModel(),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		return err
	}
	logger.Info().Msg("bye")
	return nil
}
