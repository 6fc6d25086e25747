package app

import (
	"context"
	"fmt"

	"github.com/apexridge/roofline/internal/config"
	"github.com/apexridge/roofline/internal/core"
	"github.com/apexridge/roofline/internal/core/assistant"
	"github.com/apexridge/roofline/internal/core/leadstore"
	"github.com/apexridge/roofline/internal/core/llm"
	"github.com/apexridge/roofline/internal/core/notify"
	"github.com/apexridge/roofline/internal/core/photostore"
	"github.com/apexridge/roofline/internal/logger"
	"github.com/apexridge/roofline/internal/services"
)

type App struct {
	Assistant *assistant.Assistant
	Leads     *services.LeadService
	Server    *Server

	llmClient *llm.GeminiLLM
}

// NewApp resolves the optional capabilities from config once and wires the
// components. Missing provider credentials select the degraded
// implementation; startup never fails because a provider is unconfigured.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.Get()

	store, err := leadstore.NewCSVStore(cfg.LeadsFile)
	if err != nil {
		return nil, fmt.Errorf("init lead store: %w", err)
	}

	var photos core.PhotoStore
	if cfg.S3PhotosEnabled() {
		s3Store, err := photostore.NewS3Store(ctx, cfg.AwsAccessKey, cfg.AwsSecretKey, cfg.AwsRegion, cfg.BucketName)
		if err != nil {
			return nil, fmt.Errorf("init S3 photo store: %w", err)
		}
		photos = s3Store
		log.Info().Str("bucket", cfg.BucketName).Msg("photo uploads go to S3")
	} else {
		photos = photostore.NewLocalStore(cfg.UploadsDir)
	}

	var provider core.CompletionProvider
	var llmClient *llm.GeminiLLM
	if cfg.AssistantEnabled() {
		llmClient, err = llm.NewGeminiLLM(ctx, cfg.GeminiAPIKey, cfg.GenModel)
		if err != nil {
			return nil, fmt.Errorf("init completion provider: %w", err)
		}
		provider = llmClient
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, assistant runs in degraded mode")
	}

	var sender core.MessageSender
	if cfg.MessagingEnabled() {
		sender = notify.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioFromNumber, log)
	} else {
		log.Warn().Msg("Twilio not configured, SMS notifications are disabled")
		sender = notify.NewNoopSender(log)
	}

	asst := assistant.New(provider, cfg.ChatHistoryWindow, log)
	leads := services.NewLeadService(store, photos, asst, sender, cfg.OwnerPhoneNumber, log)
	server := NewServer(cfg, asst, leads)

	return &App{
		Assistant: asst,
		Leads:     leads,
		Server:    server,
		llmClient: llmClient,
	}, nil
}

func (a *App) Close() {
	if a.llmClient != nil {
		_ = a.llmClient.Close()
	}
}
