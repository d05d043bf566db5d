package controllers

import (
	"net/http"

	"github.com/noumansaleem/partnership-ledger-backend/api/responses"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/config"
	pkgerrors "github.com/noumansaleem/partnership-ledger-backend/pkg/errors"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/logger"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/sheets"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ledger-Env", cfg.App.Env)
		responses.WriteData(w, map[string]string{"status": "live"})
	}
}

// HealthReady also pings the spreadsheet when one is configured; a failing
// primary does not make the service unready because the fallback still
// serves, but the degradation is reported.
func HealthReady(cfg *config.Config, logg *logger.Logger, primary sheets.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ledger-Env", cfg.App.Env)

		status := map[string]string{"status": "ready", "primary": "unconfigured"}
		if primary != nil {
			if err := primary.Ping(r.Context()); err != nil {
				if logg != nil {
					logg.Error(r.Context(), "primary store ping failed", pkgerrors.Wrap(pkgerrors.CodeBackendUnavailable, err, "sheets unreachable"))
				}
				status["primary"] = "unavailable"
			} else {
				status["primary"] = "ok"
			}
		}
		responses.WriteData(w, status)
	}
}
