/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/medreport/analysis"
	"github.com/humaidq/medreport/export"
	"github.com/humaidq/medreport/routes"
	"github.com/humaidq/medreport/state"
	"github.com/humaidq/medreport/static"
	"github.com/humaidq/medreport/templates"
)

const (
	sessionIdleTimeout = 2 * time.Hour
	pruneInterval      = 10 * time.Minute
	shutdownTimeout    = 10 * time.Second
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Sources: cli.EnvVars("PORT"),
			Value:   "8080",
			Usage:   "the web server port",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret for CSRF tokens (random per process when unset)",
		},
	}, sharedFlags()...),
	Action: start,
}

// appConfig is everything newApp needs to assemble the web app.
type appConfig struct {
	CSRFSecret string
	Store      *state.Store
	Analyzer   analysis.Analyzer
	Exporter   *export.Controller
	Options    routes.Options
}

func start(ctx context.Context, cmd *cli.Command) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	limit, err := maxUpload(cmd)
	if err != nil {
		return err
	}

	analyzer := newAnalyzer(analysisConfig(cmd))

	readiness := export.LoadAsync(export.CapabilityOptions{
		ArabicFontPath: cmd.String("arabic-font"),
	})
	go logReadiness(ctx, readiness)

	store := state.NewStore()
	go pruneSessions(ctx, store)

	secret := cmd.String("csrf-secret")
	if secret == "" {
		secret, err = randomSecret()
		if err != nil {
			return err
		}

		appLogger.Warn("CSRF_SECRET not set, using a random secret for this process")
	}

	f, err := newApp(appConfig{
		CSRFSecret: secret,
		Store:      store,
		Analyzer:   analyzer,
		Exporter:   export.NewController(readiness, export.DefaultWait),
		Options: routes.Options{
			MaxUploadBytes:  limit,
			AnalysisTimeout: cmd.Duration("analysis-timeout"),
			BaseContext:     ctx,
		},
	})
	if err != nil {
		return err
	}

	port := cmd.String("port")

	// No write timeout: the analysis event stream stays open for as long as
	// an analysis runs.
	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", port),
		Handler:           f,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       time.Minute,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          requestStdLogger,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("starting web server", "port", port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	appLogger.Info("shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newAnalyzer(cfg analysis.Config) analysis.Analyzer {
	client, err := analysis.NewClient(cfg, nil)
	if err != nil {
		appLogger.Warn("analysis unavailable", "error", err)
		return analysis.Unavailable{Err: err}
	}

	appLogger.Info("analysis client configured", "model", client.Model())

	return client
}

func logReadiness(ctx context.Context, readiness *export.Readiness) {
	if _, err := readiness.Wait(ctx, time.Minute); err != nil {
		exportLogger.Error("export capabilities unavailable", "error", err)
		return
	}

	exportLogger.Info("export capabilities loaded")
}

func pruneSessions(ctx context.Context, store *state.Store) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Prune(sessionIdleTimeout); n > 0 {
				appLogger.Debug("pruned idle sessions", "count", n)
			}
		}
	}
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate csrf secret: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

func newApp(cfg appConfig) (*flamego.Flame, error) {
	f := flamego.Classic()

	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	f.Use(session.Sessioner())
	f.Use(csrf.Csrfer(csrf.Options{
		Secret: cfg.CSRFSecret,
	}))
	f.Use(template.Templater(template.Options{
		FileSystem: fs,
	}))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))
	f.Use(routes.RequestLogger)
	f.Use(routes.NoCacheHeaders())
	f.Use(routes.CSRFInjector())
	f.Use(routes.FlashInjector())

	f.Map(cfg.Store)
	f.MapTo(cfg.Analyzer, (*analysis.Analyzer)(nil))
	f.Map(cfg.Exporter)
	f.Map(cfg.Options)

	f.Get("/", routes.Home)
	f.Post("/upload", routes.LimitBody(routes.UploadBodyLimit(cfg.Options.MaxUploadBytes)), csrf.Validate, routes.UploadReport)
	f.Post("/clear", csrf.Validate, routes.ClearFile)
	f.Post("/analyze", csrf.Validate, routes.Analyze)
	f.Get("/analysis/events", routes.AnalysisEvents)
	f.Post("/language", csrf.Validate, routes.ToggleLanguage)
	f.Post("/theme", csrf.Validate, routes.ToggleTheme)
	f.Post("/font-size", csrf.Validate, routes.CycleFontSize)
	f.Post("/page", csrf.Validate, routes.SetResultPage)
	f.Get("/export.pdf", routes.ExportPDF)
	f.Get("/export/events", routes.ExportEvents)

	return f, nil
}
