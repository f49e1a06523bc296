package app

import (
	"context"
	"net/http"

	"tiffin-finder/config"
	"tiffin-finder/storefront/internal/auth"
	"tiffin-finder/storefront/internal/backend"
	"tiffin-finder/storefront/internal/cart"
	"tiffin-finder/storefront/internal/checkout"
	"tiffin-finder/storefront/internal/discovery"
	"tiffin-finder/storefront/internal/localstore"
	"tiffin-finder/storefront/internal/model"
	"tiffin-finder/storefront/internal/validate"

	"github.com/sirupsen/logrus"
)

// App holds one instance of every store and service the commands use.
type App struct {
	Config    *Config
	Log       *logrus.Logger
	Backend   *backend.Client
	Cart      *cart.Store
	Auth      *auth.Store
	Finder    *discovery.Finder
	Search    *discovery.Search
	Checkout  *checkout.Service
	Validator *validate.Validator

	local *localstore.SQLite
}

func New(ctx context.Context, cfg *Config) (*App, error) {
	log := config.NewLogger("storefront")
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	local, err := localstore.Open(cfg.DataFile)
	if err != nil {
		return nil, err
	}

	client := backend.NewClient(cfg.APIURL, &http.Client{Timeout: cfg.Timeout}, log)

	var fallback []model.Kitchen
	if cfg.DemoFallback {
		fallback = discovery.DemoKitchens()
	}
	finder := discovery.NewFinder(client, fallback, log)
	carts := cart.NewStore(ctx, local, log)

	return &App{
		Config:    cfg,
		Log:       log,
		Backend:   client,
		Cart:      carts,
		Auth:      auth.NewStore(ctx, client, local, log),
		Finder:    finder,
		Search:    discovery.NewSearch(finder),
		Checkout:  checkout.NewService(carts, client, log),
		Validator: validate.New(),
		local:     local,
	}, nil
}

// Origin is the configured discovery reference point.
func (a *App) Origin() model.Coordinates {
	return model.Coordinates{Lat: a.Config.Latitude, Lng: a.Config.Longitude}
}

// WatchSession follows auth events pushed by the server, such as a sign-out
// on another device, until the returned stop function is called.
func (a *App) WatchSession(ctx context.Context) (stop func()) {
	if _, ok := a.Backend.CurrentSession(); !ok {
		return func() {}
	}
	sub, err := a.Backend.WatchAuth(ctx)
	if err != nil {
		a.Log.WithError(err).Warn("session updates unavailable")
		return func() {}
	}
	return func() { sub.Close() }
}

// Forget drops the saved cart and session snapshots from this device.
func (a *App) Forget(ctx context.Context) error {
	for _, namespace := range []string{cart.Namespace, auth.Namespace} {
		if err := a.local.Delete(ctx, namespace); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) Close() {
	a.Auth.Close()
	if err := a.local.Close(); err != nil {
		a.Log.WithError(err).Warn("failed to close local store")
	}
}
