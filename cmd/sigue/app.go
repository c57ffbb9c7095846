package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/sigue-client/internal/form"
	"github.com/noah-isme/sigue-client/internal/gateway"
	"github.com/noah-isme/sigue-client/internal/lookup"
	"github.com/noah-isme/sigue-client/internal/screen"
	"github.com/noah-isme/sigue-client/internal/session"
	"github.com/noah-isme/sigue-client/pkg/cache"
	"github.com/noah-isme/sigue-client/pkg/config"
	"github.com/noah-isme/sigue-client/pkg/logger"
	"github.com/noah-isme/sigue-client/pkg/middleware/requestid"
	"github.com/noah-isme/sigue-client/pkg/storage"
)

// app is one logged-in invocation of the client.
type app struct {
	logger  *zap.Logger
	session *session.Session
	store   cache.Store
	catalog *lookup.Catalog
	exports *storage.LocalStorage
	deps    screen.Deps
}

// openApp loads configuration, logs in and wires the screens.
func openApp(ctx context.Context, creds credentials, confirm screen.Confirmer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	metrics := gateway.NewMetrics()
	sess := session.New()
	opts := gateway.OptionsFromConfig(cfg.Gateway)
	opts.Tokens = sess
	opts.Logger = log
	opts.Metrics = metrics
	client := gateway.New(opts)

	resp, err := client.Login(ctx, creds.username, creds.password)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	if err := sess.Start(resp); err != nil {
		_ = log.Sync()
		return nil, err
	}
	log.Info("session started",
		zap.String("user", resp.User.Username),
		zap.String("role", string(resp.User.Role)),
		zap.String("request_id", requestid.FromContext(ctx)),
	)

	api := gateway.Bind(client)
	store := cache.Open(cfg, log)
	scope := lookup.NewScope(store, cfg.Cache.TTL, metrics, log)

	return &app{
		logger:  log,
		session: sess,
		store:   store,
		catalog: lookup.NewCatalog(lookup.FromGateway(api), scope),
		exports: storage.NewLocalStorage(cfg.Export.Dir),
		deps: screen.Deps{
			API:       api,
			Validator: form.New(nil),
			Session:   sess,
			Confirm:   confirm,
			Logger:    log,
		},
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.catalog.Close(ctx); err != nil {
		a.logger.Warn("failed to drop cached lists", zap.Error(err))
	}
	if err := a.store.Close(); err != nil {
		a.logger.Warn("failed to close cache", zap.Error(err))
	}
	_ = a.logger.Sync()
}

// promptConfirmer asks on out and reads a y/N answer from in.
func promptConfirmer(in io.Reader, out io.Writer) screen.Confirmer {
	reader := bufio.NewReader(in)
	return screen.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N] ", prompt)
		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	})
}
