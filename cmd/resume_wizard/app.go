package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/resume-wizard/internal/config"
	"github.com/jonathan/resume-wizard/internal/llm"
	"github.com/jonathan/resume-wizard/internal/observability"
	"github.com/jonathan/resume-wizard/internal/storage"
	"github.com/jonathan/resume-wizard/internal/store"
	"github.com/jonathan/resume-wizard/internal/types"
	"github.com/jonathan/resume-wizard/internal/wizard"
)

// app bundles the wired components every subcommand needs: configuration,
// the persistent backend, the hydrated draft store, and the printer.
type app struct {
	cfg     config.Config
	backend storage.Storage
	store   *store.Store
	wiz     *wizard.Wizard
	printer *observability.Printer
}

// loadAppConfig merges the config file, environment, and defaults.
func loadAppConfig() (config.Config, error) {
	cfg := config.Config{Verbose: verboseFlag}

	if configFile != "" {
		fileCfg, err := config.LoadConfig(configFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		cfg.Verbose = cfg.Verbose || fileCfg.Verbose
	}

	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newApp wires storage, hydrates the draft, and attaches persistence as a
// store observer so every mutation is written through.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, err
	}

	var backend storage.Storage
	if cfg.DatabaseURL != "" {
		backend, err = storage.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
	} else {
		stateDir, err := cfg.ResolveStateDir()
		if err != nil {
			return nil, err
		}
		backend, err = storage.NewFileStore(stateDir)
		if err != nil {
			return nil, err
		}
	}

	draft, err := storage.LoadOrDefault(ctx, backend, storage.DefaultKey)
	if err != nil {
		backend.Close()
		return nil, err
	}

	st := store.New(
		store.WithDraft(draft),
		store.WithObserver(func(snapshot *types.ResumeDraft) {
			if err := backend.Save(context.Background(), storage.DefaultKey, snapshot); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to persist draft: %v\n", err)
			}
		}),
	)

	return &app{
		cfg:     cfg,
		backend: backend,
		store:   st,
		wiz:     wizard.New(),
		printer: observability.NewPrinter(os.Stdout),
	}, nil
}

func (a *app) Close() {
	if a.backend != nil {
		_ = a.backend.Close()
	}
}

// newLLMClient builds a generation client from the app config. It fails when
// no API key is configured, before any network call.
func (a *app) newLLMClient(ctx context.Context) (llm.Client, error) {
	llmCfg := llm.DefaultConfig()
	if a.cfg.Provider != "" {
		llmCfg.Provider = llm.Provider(a.cfg.Provider)
	}
	llmCfg.Model = a.cfg.Model
	llmCfg.APIKey = a.cfg.APIKey
	return llm.NewClient(ctx, llmCfg)
}
