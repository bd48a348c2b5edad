package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"supportdesk/internal/cache"
	"supportdesk/internal/config"
	"supportdesk/internal/facts"
	"supportdesk/internal/llm"
	"supportdesk/internal/observability"
	"supportdesk/internal/store"
	"supportdesk/internal/tasks"
)

type App struct {
	Config   config.Config
	Store    *store.Store
	Cache    *cache.Cache
	LLM      llm.Provider
	Tasks    *tasks.Service
	Observer *observability.RunObserver

	logger *log.Logger
}

func New(ctx context.Context, cfg config.Config, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.Default()
	}

	provider, err := selectProvider(cfg)
	if err != nil {
		return nil, err
	}

	sheet, err := facts.Load(cfg.Facts.Path)
	if err != nil {
		return nil, fmt.Errorf("load fact sheet: %w", err)
	}

	var st *store.Store
	if cfg.Database.DSN != "" {
		st, err = store.Open(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx, st.DB()); err != nil {
			return nil, err
		}
	}

	var ca *cache.Cache
	if cfg.Redis.URL != "" {
		ca, err = cache.New(cfg.Redis.URL, cfg.Redis.CacheTTL)
		if err != nil {
			return nil, err
		}
	}

	observer := observability.NewRunObserver(logger)
	svc := tasks.NewService(provider, sheet, cfg.Schemas.Dir, cfg.Schemas.Default)
	if ca != nil {
		svc.Cache = ca
	}
	svc.Store = st
	svc.Observer = observer

	return &App{
		Config:   cfg,
		Store:    st,
		Cache:    ca,
		LLM:      provider,
		Tasks:    svc,
		Observer: observer,
		logger:   logger,
	}, nil
}

func (a *App) Close() error {
	var err error
	if a.Store != nil {
		err = a.Store.Close()
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
	return err
}

func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.Config.HTTP.Addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	a.logger.Printf("listening addr=%s provider=%s model=%s", a.Config.HTTP.Addr, a.LLM.Name(), a.LLM.Model())
	return srv.ListenAndServe()
}

// selectProvider picks the generation client: a real Mistral client when a
// credential is present, the scripted provider in dev mode, otherwise a
// hard startup error.
func selectProvider(cfg config.Config) (llm.Provider, error) {
	if cfg.LLM.APIKey != "" {
		return llm.NewMistral(cfg.LLM.APIKey, cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Timeout)
	}
	if cfg.Dev.Mode {
		return llm.NewScript(), nil
	}
	return nil, llm.ErrMissingAPIKey
}
