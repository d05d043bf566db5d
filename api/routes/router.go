package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noumansaleem/partnership-ledger-backend/api/controllers"
	"github.com/noumansaleem/partnership-ledger-backend/api/middleware"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/config"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/logger"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/sheets"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	ledgerService controllers.LedgerService,
	primary sheets.Pinger,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, primary))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	partners := cfg.Partners.Set()

	r.Route("/api", func(r chi.Router) {
		r.Route("/data", func(r chi.Router) {
			r.Get("/", controllers.LedgerFetch(ledgerService, logg))
			r.Post("/", controllers.LedgerReplace(ledgerService, logg))
		})
		r.Post("/transaction", controllers.TransactionCreate(ledgerService, logg))
		r.Route("/transaction/{id}", func(r chi.Router) {
			r.Put("/", controllers.TransactionUpdate(ledgerService, logg))
			r.Delete("/", controllers.TransactionDelete(ledgerService, logg))
		})
		r.Get("/summary", controllers.SummaryFetch(ledgerService, partners, logg))
	})

	return r
}
