// Package storefront wires the domain packages into one HTTP application.
package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"Elegante/internal/account"
	"Elegante/internal/cart"
	"Elegante/internal/catalog"
	"Elegante/internal/leads"
	"Elegante/pkg/kit"
)

// DefaultUserID is the seeded demo user every cart request operates on.
const DefaultUserID = 1

const readyPingTimeout = 1 * time.Second

// Stores bundles the four store capabilities the app is built on. Variants
// (memory, Postgres) are chosen by the caller.
type Stores struct {
	Catalog  catalog.Store
	Cart     cart.Store
	Leads    leads.Store
	Accounts account.Store
}

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	// FormLimiter throttles the lead forms when non-nil; the default
	// deployment runs without one.
	FormLimiter *kit.IPRateLimiter
}

func NewHandler(st Stores, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(st, deps.Log))

	r.Mount("/api", apiRouter(st, deps))
	return r
}

func apiRouter(st Stores, deps HTTPDeps) chi.Router {
	catalogSrv := &catalog.Server{Store: st.Catalog, Log: deps.Log}
	cartSrv := &cart.Server{
		Store:    st.Cart,
		Products: st.Catalog,
		Log:      deps.Log,
		UserID:   DefaultUserID,
	}
	leadsSrv := &leads.Server{
		Store:       st.Leads,
		Log:         deps.Log,
		FormLimiter: deps.FormLimiter,
	}

	api := chi.NewRouter()
	catalogSrv.Register(api)
	cartSrv.Register(api)
	leadsSrv.Register(api)
	return api
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

func readyz(st Stores, log *zap.Logger) http.HandlerFunc {
	pings := []struct {
		name string
		ping func(context.Context) error
	}{
		{"catalog", st.Catalog.Ping},
		{"cart", st.Cart.Ping},
		{"leads", st.Leads.Ping},
		{"accounts", st.Accounts.Ping},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
		defer cancel()

		for _, p := range pings {
			if err := p.ping(ctx); err != nil {
				if log != nil {
					log.Warn("readyz failed", zap.String("store", p.name), zap.Error(err))
				}
				kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", map[string]any{"store": p.name})
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
