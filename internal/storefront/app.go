// Package storefront is the composition root: it constructs each store
// exactly once for the life of the process and threads them through the
// HTTP layer, so no package hides a singleton of its own.
package storefront

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"DesignerMe/internal/cart"
	"DesignerMe/internal/catalog"
	"DesignerMe/internal/config"
	"DesignerMe/internal/search"
	"DesignerMe/internal/session"
	"DesignerMe/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type App struct {
	Catalog *catalog.Store
	Cart    *cart.Store
	Search  *search.State
	Session *session.Store
}

// New builds the process-wide stores and the handler serving them.
func New(cfg config.Config, deps HTTPDeps) (*App, http.Handler) {
	app := &App{
		Catalog: catalog.NewStore(cfg.MockLatency),
		Cart:    cart.NewStore(),
		Search:  search.NewState(),
		Session: session.NewStore(cfg.SessionFile, cfg.MockLatency),
	}

	tm := session.NewTokenMaker(cfg.JWTSecret)

	r := chi.NewRouter()
	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	catalogSrv := &catalog.Server{
		Store:     app.Catalog,
		Search:    app.Search,
		Log:       deps.Log,
		AdminOnly: session.RequireRole(tm, session.RoleAdministrator),
	}
	catalogSrv.Register(r)

	cartSrv := &cart.Server{Store: app.Cart, Catalog: app.Catalog}
	cartSrv.Register(r)

	searchSrv := &search.Server{State: app.Search}
	searchSrv.Register(r)

	sessionSrv := &session.Server{
		Log:      deps.Log,
		Store:    app.Session,
		JWT:      tm,
		TokenTTL: cfg.TokenTTL,
	}
	sessionSrv.Register(r)

	return app, r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
