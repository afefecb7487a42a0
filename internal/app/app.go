// Package app wires configuration, the resolver pipeline and the HTTP
// surface into one runnable service.
package app

import (
	"context"
	"sync"

	"github.com/updownlabs/updown-resolver/internal/resolver"
	"github.com/updownlabs/updown-resolver/internal/storage"
	"github.com/updownlabs/updown-resolver/pkg/cache"
	"github.com/updownlabs/updown-resolver/pkg/config"
	"github.com/updownlabs/updown-resolver/pkg/healthprobe"
	"github.com/updownlabs/updown-resolver/pkg/httpserver"
	"go.uber.org/zap"
)

// App is the main application orchestrator.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	healthChecker *healthprobe.HealthChecker
	httpServer    *httpserver.Server
	resolver      *resolver.Resolver
	storage       storage.Storage
	cache         cache.Cache
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
}

// Resolver returns the wired resolver, for one-shot CLI use.
func (a *App) Resolver() *resolver.Resolver {
	return a.resolver
}
