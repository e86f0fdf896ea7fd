package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/store"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// loadConfig merges the config file (when given) with flag values and the
// environment.
func loadConfig(flags config.Config) (*config.Config, error) {
	cfg := flags
	if configPath != "" {
		fileCfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(*fileCfg)
		// Merge skips bools; a consent granted in the file still counts
		cfg.Consent = flags.Consent || fileCfg.Consent
	}
	cfg.FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadJobText resolves the job posting from a file or URL per the config.
func loadJobText(ctx context.Context, cfg *config.Config, log *zap.Logger) (string, error) {
	switch {
	case cfg.Job != "":
		return ingestion.JobFromFile(cfg.Job)
	case cfg.JobURL != "":
		return loadJobFromURL(ctx, cfg, log)
	}
	return "", fmt.Errorf("either --job or --job-url must be provided")
}

// loadJobFromURL fetches the posting, going through the database cache when
// one is configured. Cache errors only log; a cold or broken cache must not
// block an analysis.
func loadJobFromURL(ctx context.Context, cfg *config.Config, log *zap.Logger) (string, error) {
	s := openPostingCache(ctx, cfg, log)
	if s != nil {
		defer s.Close()
		cached, err := s.GetPosting(ctx, cfg.JobURL, store.DefaultPostingTTL)
		if err != nil {
			log.Warn("posting cache read failed", zap.Error(err))
		} else if cached != nil {
			log.Debug("job posting served from cache", zap.String("url", cfg.JobURL))
			return cached.Text, nil
		}
	}

	posting, err := ingestion.JobFromURL(ctx, cfg.JobURL, log)
	if err != nil {
		return "", err
	}
	if s != nil {
		if err := s.SavePosting(ctx, posting); err != nil {
			log.Warn("posting cache write failed", zap.Error(err))
		}
	}
	return posting.Text, nil
}

func openPostingCache(ctx context.Context, cfg *config.Config, log *zap.Logger) *store.Store {
	if cfg.DatabaseURL == "" {
		return nil
	}
	s, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Warn("posting cache unavailable", zap.Error(err))
		return nil
	}
	if err := s.EnsureSchema(ctx); err != nil {
		log.Warn("posting cache unavailable", zap.Error(err))
		s.Close()
		return nil
	}
	return s
}

// loadResume builds the resume artifact from the configured file.
func loadResume(cfg *config.Config) (*types.ResumeArtifact, error) {
	if cfg.Resume == "" {
		return nil, fmt.Errorf("--resume must be provided")
	}
	return ingestion.ResumeFromFile(cfg.Resume)
}
