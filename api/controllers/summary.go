package controllers

import (
	"net/http"
	"strings"

	"github.com/noumansaleem/partnership-ledger-backend/api/responses"
	"github.com/noumansaleem/partnership-ledger-backend/internal/ledger"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/enums"
	pkgerrors "github.com/noumansaleem/partnership-ledger-backend/pkg/errors"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/logger"
)

// SummaryFetch computes live totals over the current ledger. Without a
// partner query parameter it returns the combined partnership summary;
// with one it returns that partner's view, shared entries halved.
func SummaryFetch(svc LedgerService, partners enums.PartnerSet, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ledger service unavailable"))
			return
		}

		var partner enums.Partner
		if raw := strings.TrimSpace(r.URL.Query().Get("partner")); raw != "" {
			parsed, err := partners.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid partner filter"))
				return
			}
			if parsed == enums.PartnerBoth {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "filter by an individual partner or omit the filter"))
				return
			}
			partner = parsed
		}

		doc, err := svc.Load(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, ledger.Summarize(doc, partner))
	}
}
