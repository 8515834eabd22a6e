package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/okian/rinkrank/internal/adapters/chart"
	"github.com/okian/rinkrank/internal/adapters/http/api"
	"github.com/okian/rinkrank/internal/adapters/http/site"
	"github.com/okian/rinkrank/internal/adapters/http/swagger"
	service "github.com/okian/rinkrank/internal/app"
	"github.com/okian/rinkrank/internal/config"
	"github.com/okian/rinkrank/pkg/logger"
)

// HTTP server timeouts.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		logger.Get().Error(ctx, "command failed", logger.Err(err))
		os.Exit(1)
	}
}

// newApp builds the command tree. Global flags mirror the environment
// variables the config loader reads, so either spelling works.
func newApp() *cli.App {
	return &cli.App{
		Name:  "rinkrank",
		Usage: "historical national-team rankings from the curated event catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the configuration file",
				EnvVars: []string{"RINKRANK_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "catalog",
				Usage:   "catalog file (.yaml or .xlsx), overriding the configuration",
				EnvVars: []string{"RINKRANK_CATALOG"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"RINKRANK_LOG_LEVEL"},
			},
		},
		Commands: []*cli.Command{
			newServeCommand(),
			newRankCommand(),
			newChartCommand(),
			newValidateCommand(),
		},
	}
}

// loadConfig layers defaults, file and environment, then lets explicit
// command-line flags win. An unparseable log level keeps the default
// rather than killing the process.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if v := c.String("catalog"); v != "" {
		cfg.Catalog = v
	}
	if v := c.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(c.Context, "invalid log_level, keeping info",
			logger.String("log_level", cfg.LogLevel))
	}
	return cfg, nil
}

// startService builds the service from configuration and runs the
// first computation.
func startService(ctx context.Context, cfg *config.Config) (*service.Service, error) {
	svc := service.New(
		service.WithLogger(logger.Get()),
		service.WithCatalogPath(cfg.Catalog),
		service.WithWorkers(cfg.Workers),
		service.WithOfficialFrom(cfg.OfficialFrom),
		service.WithPreOlympicFold(cfg.PreOlympicFold),
		service.WithCountOther(cfg.CountOther),
	)
	if err := svc.Start(ctx); err != nil {
		return nil, fmt.Errorf("start service: %w", err)
	}
	return svc, nil
}

func newServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "compute the ranking series and serve the query API",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return serve(c.Context, cfg)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logger.Named("main")

	svc, err := startService(ctx, cfg)
	if err != nil {
		return err
	}
	defer svc.Stop()

	mux := http.NewServeMux()
	site.Register(ctx, mux)
	swagger.Register(ctx, mux)
	api.NewServer(svc, svc, api.WithMaxLimit(cfg.MaxLimit)).Register(mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}
	log.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info(ctx, "server stopped")
	return nil
}

func newRankCommand() *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "print the ranking table for one evaluation year",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "year", Usage: "evaluation year (default: latest computed)"},
			&cli.IntFlag{Name: "top", Value: 10, Usage: "number of rows"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			svc, err := startService(c.Context, cfg)
			if err != nil {
				return err
			}
			defer svc.Stop()

			year := c.Int("year")
			if year == 0 {
				year, err = latestYear(c.Context, svc)
				if err != nil {
					return err
				}
			}
			entries, err := svc.TopN(c.Context, year, c.Int("top"))
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Printf("no ranking for %d\n", year)
				return nil
			}

			fmt.Printf("%-5s %-5s %s\n", "RANK", "TEAM", "POINTS")
			for _, e := range entries {
				rank := fmt.Sprintf("%d", e.Rank)
				if e.Tied {
					rank += "="
				}
				fmt.Printf("%-5s %-5s %d\n", rank, e.Team, e.Points)
			}
			return nil
		},
	}
}

func newChartCommand() *cli.Command {
	return &cli.Command{
		Name:  "chart",
		Usage: "render a PNG of ranking history",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "rankings.png", Usage: "output file"},
			&cli.IntFlag{Name: "from", Usage: "first year (default: earliest computed)"},
			&cli.IntFlag{Name: "to", Usage: "last year (default: latest computed)"},
			&cli.IntFlag{Name: "top", Value: 5, Usage: "teams to plot, taken from the final year's table"},
			&cli.StringSliceFlag{Name: "team", Usage: "team codes to plot instead of the leaders"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			svc, err := startService(c.Context, cfg)
			if err != nil {
				return err
			}
			defer svc.Stop()

			years := svc.Years(c.Context)
			if len(years) == 0 {
				return cli.Exit("no rankable years in the catalog", 1)
			}
			from, to := years[0], years[len(years)-1]
			if v := c.Int("from"); v > 0 {
				from = v
			}
			if v := c.Int("to"); v > 0 {
				to = v
			}

			teams := c.StringSlice("team")
			if len(teams) == 0 {
				entries, err := svc.TopN(c.Context, to, c.Int("top"))
				if err != nil {
					return err
				}
				for _, e := range entries {
					teams = append(teams, e.Team)
				}
			}
			for i, t := range teams {
				teams[i] = strings.ToUpper(t)
			}

			png, err := chart.New().Render(c.Context, svc, teams, from, to)
			if err != nil {
				return err
			}
			out := c.String("out")
			if err := os.WriteFile(out, png, 0o644); err != nil {
				return fmt.Errorf("write chart: %w", err)
			}
			fmt.Printf("wrote %s: %d teams, %d-%d\n", out, len(teams), from, to)
			return nil
		},
	}
}

func newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "load the catalog, run the pipeline, and report data problems",
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			svc, err := startService(c.Context, cfg)
			if err != nil {
				return err
			}
			defer svc.Stop()

			run := svc.LastRun()
			problems := svc.Problems(c.Context)
			fmt.Printf("%s: %d superevents, %d rankable years, %d teams, %d problems\n",
				cfg.Catalog, run.Superevents, run.Years, run.Teams, len(problems))
			byStage := make(map[string][]string)
			for _, p := range problems {
				line := p.Err
				if p.Event != "" {
					line = p.Event + ": " + line
				}
				byStage[p.Stage] = append(byStage[p.Stage], line)
			}
			stages := make([]string, 0, len(byStage))
			for s := range byStage {
				stages = append(stages, s)
			}
			sort.Strings(stages)
			for _, s := range stages {
				fmt.Printf("%s:\n", s)
				for _, line := range byStage[s] {
					fmt.Printf("  %s\n", line)
				}
			}
			if len(problems) > 0 {
				return cli.Exit(fmt.Sprintf("%d problems in %s", len(problems), cfg.Catalog), 1)
			}
			return nil
		},
	}
}

// latestYear picks the most recent evaluation year the store holds.
func latestYear(ctx context.Context, svc *service.Service) (int, error) {
	years := svc.Years(ctx)
	if len(years) == 0 {
		return 0, errors.New("no rankable years in the catalog")
	}
	return years[len(years)-1], nil
}
