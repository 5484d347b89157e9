package container

import (
	"context"

	"github.com/tycrek/eye/cmd/eye/service"
	"github.com/tycrek/eye/common/bootstrap"
	"github.com/tycrek/eye/common/clients"
	eyeerr "github.com/tycrek/eye/common/errors"
	"github.com/tycrek/eye/common/kv"
)

// Container holds all initialized services (singleton pattern)
type Container struct {
	// Components
	Components *bootstrap.Components

	// Clients
	Images *clients.ImagesClient

	// Services
	Catalog *service.CatalogService
	Relay   *service.RelayService
}

// NewContainer initializes all services once
func NewContainer(components *bootstrap.Components) (*Container, error) {
	cfg := components.Config

	// Credentials come from the environment when both values are set,
	// otherwise from the cache store seeded by eye-setup. Resolution is
	// lazy so a credential-less start only fails once a refresh runs.
	var creds clients.CredentialsProvider
	if cfg.Upstream.AccountID != "" && cfg.Upstream.APIKey != "" {
		creds = clients.StaticCredentials{
			AccountID: cfg.Upstream.AccountID,
			APIKey:    cfg.Upstream.APIKey,
		}
	} else {
		components.Logger.Info("upstream credentials not in environment, will read from cache store")
		creds = kvCredentials{store: components.KV}
	}

	imagesClient := clients.NewImagesClient(
		cfg.Upstream.APIBase,
		creds,
		cfg.Upstream.RequestsPerSecond,
		cfg.Upstream.Timeout,
		components.Logger,
	)

	// Initialize services (bottom-up: dependencies first)
	catalogService := service.NewCatalogService(
		imagesClient,
		components.KV,
		service.ExpiryPolicy{TTL: cfg.Cache.TTL},
		cfg.Cache.BatchSize,
		components.Logger,
	)

	// Shutdown must wait for in-flight catalog writes
	components.AddCleanup(catalogService.Close)

	relayService := service.NewRelayService(catalogService, imagesClient, components.Logger)

	return &Container{
		Components: components,
		Images:     imagesClient,
		Catalog:    catalogService,
		Relay:      relayService,
	}, nil
}

// kvCredentials resolves upstream credentials from the cache store
type kvCredentials struct {
	store kv.Store
}

// Credentials reads both credential keys. Missing keys are a configuration
// problem, not a cache miss; only a store failure reads as one.
func (p kvCredentials) Credentials(ctx context.Context) (clients.Credentials, error) {
	account, foundAccount, err := p.store.Get(ctx, kv.KeyAccountID)
	if err != nil {
		return clients.Credentials{}, eyeerr.Wrap(eyeerr.CacheRead, err, "failed to read stored account id")
	}

	apiKey, foundKey, err := p.store.Get(ctx, kv.KeyAPIKey)
	if err != nil {
		return clients.Credentials{}, eyeerr.Wrap(eyeerr.CacheRead, err, "failed to read stored api key")
	}

	if !foundAccount || !foundKey {
		return clients.Credentials{}, eyeerr.New(eyeerr.Config,
			"upstream credentials not configured: set UPSTREAM_ACCOUNT_ID and UPSTREAM_API_KEY or run eye-setup")
	}

	return clients.Credentials{AccountID: account, APIKey: apiKey}, nil
}
