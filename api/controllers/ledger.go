package controllers

import (
	"context"
	"net/http"

	"github.com/noumansaleem/partnership-ledger-backend/api/responses"
	"github.com/noumansaleem/partnership-ledger-backend/api/validators"
	"github.com/noumansaleem/partnership-ledger-backend/internal/ledger"
	pkgerrors "github.com/noumansaleem/partnership-ledger-backend/pkg/errors"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/logger"
)

// LedgerService describes the repository methods the HTTP controllers use.
type LedgerService interface {
	Load(ctx context.Context) (*ledger.Document, error)
	Append(ctx context.Context, input ledger.TransactionInput) (*ledger.Transaction, error)
	Update(ctx context.Context, id int64, patch ledger.TransactionPatch) (*ledger.Transaction, error)
	SoftDelete(ctx context.Context, id int64) (*ledger.Transaction, error)
	Replace(ctx context.Context, doc *ledger.Document) (*ledger.Document, error)
}

// LedgerFetch returns the full ledger document as one payload.
func LedgerFetch(svc LedgerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ledger service unavailable"))
			return
		}

		doc, err := svc.Load(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteData(w, doc)
	}
}

// LedgerReplace overwrites the whole document with the request body.
func LedgerReplace(svc LedgerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "ledger service unavailable"))
			return
		}

		var doc ledger.Document
		if err := validators.DecodeJSONBody(r, &doc); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := svc.Replace(r.Context(), &doc); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMessage(w, "Data saved successfully", nil)
	}
}
