package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noumansaleem/partnership-ledger-backend/pkg/enums"
	pkgerrors "github.com/noumansaleem/partnership-ledger-backend/pkg/errors"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/logger"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/metrics"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/types"
)

// PrimaryStore is the preferred remote ledger backend. Every method may fail
// with a BACKEND_UNAVAILABLE error; the repository treats that as a signal to
// degrade, never as a reason to crash.
type PrimaryStore interface {
	FetchAll(ctx context.Context) (*Document, error)
	PersistAll(ctx context.Context, doc *Document) error
	AppendOne(ctx context.Context, t *Transaction) error
}

// FallbackStore is the local document store used when the primary is
// unreachable or unconfigured.
type FallbackStore interface {
	Read(ctx context.Context) (*Document, error)
	Write(ctx context.Context, doc *Document) error
}

// Repository orchestrates primary-vs-fallback selection and owns every
// ledger mutation: id assignment, audit stamping, and soft deletion.
type Repository struct {
	primary  PrimaryStore
	fallback FallbackStore
	partners enums.PartnerSet
	logg     *logger.Logger
	metrics  *metrics.LedgerMetrics
	now      func() time.Time

	// Serializes load-modify-persist cycles within this process so two
	// concurrent appends cannot mint the same id. A second process writing
	// the same backends can still race; see DESIGN.md.
	mu sync.Mutex
}

// RepositoryParams wires a Repository. Primary may be nil when no
// spreadsheet is configured.
type RepositoryParams struct {
	Primary  PrimaryStore
	Fallback FallbackStore
	Partners enums.PartnerSet
	Logger   *logger.Logger
	Metrics  *metrics.LedgerMetrics
	Now      func() time.Time
}

// NewRepository validates wiring and returns a ready repository.
func NewRepository(params RepositoryParams) (*Repository, error) {
	if params.Fallback == nil {
		return nil, fmt.Errorf("fallback store required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Repository{
		primary:  params.Primary,
		fallback: params.Fallback,
		partners: params.Partners,
		logg:     params.Logger,
		metrics:  params.Metrics,
		now:      now,
	}, nil
}

// Load returns the current ledger document from exactly one backend:
// the primary when it answers, otherwise the fallback. No merging.
func (r *Repository) Load(ctx context.Context) (*Document, error) {
	if r.primary != nil {
		doc, err := r.primary.FetchAll(ctx)
		if err == nil {
			r.metrics.IncLoad(metrics.BackendSheets)
			return doc, nil
		}
		if !pkgerrors.Is(err, pkgerrors.CodeBackendUnavailable) {
			return nil, err
		}
		if r.logg != nil {
			r.logg.Warn(r.logg.WithBackend(ctx, metrics.BackendSheets), "primary fetch failed, reading fallback")
		}
	}

	doc, err := r.fallback.Read(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "reading fallback document")
	}
	doc.Normalize()
	r.metrics.IncLoad(metrics.BackendFile)
	return doc, nil
}

// Append creates a transaction from the input, assigns the next id, stamps
// the creation pair, and persists. The returned transaction is final only
// when the error is nil; on PERSISTENCE_FAILED nothing was durably stored.
func (r *Repository) Append(ctx context.Context, input TransactionInput) (*Transaction, error) {
	t, err := r.buildTransaction(input)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	t.ID = doc.NextID
	doc.NextID++
	t.markCreated(r.now())
	doc.Transactions = append(doc.Transactions, t)

	if err := r.persist(ctx, doc, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update merges the patch over the identified transaction and restamps the
// update pair. Unknown ids fail with NOT_FOUND before anything is touched.
func (r *Repository) Update(ctx context.Context, id int64, patch TransactionPatch) (*Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	t := doc.Find(id)
	if t == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("transaction %d not found", id))
	}
	if err := r.applyPatch(t, patch); err != nil {
		return nil, err
	}
	t.markUpdated(r.now())

	if err := r.persist(ctx, doc, nil); err != nil {
		return nil, err
	}
	return t, nil
}

// SoftDelete flags the transaction as deleted and stamps the deletion pair.
// The entry stays in the document. Deleting twice restamps and succeeds.
func (r *Repository) SoftDelete(ctx context.Context, id int64) (*Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	t := doc.Find(id)
	if t == nil {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("transaction %d not found", id))
	}
	t.markDeleted(r.now())

	if err := r.persist(ctx, doc, nil); err != nil {
		return nil, err
	}
	return t, nil
}

// Replace persists a caller-supplied document wholesale, normalizing it
// first. This backs the full-document import endpoint.
func (r *Repository) Replace(ctx context.Context, doc *Document) (*Document, error) {
	if doc == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "document required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	doc.Normalize()
	if err := r.persist(ctx, doc, nil); err != nil {
		return nil, err
	}
	return doc, nil
}

// persist writes the mutated document: primary first, fallback only when the
// primary fails or is unconfigured. appended, when non-nil, lets the primary
// take the cheaper single-row path. Both backends failing is the only way a
// mutation surfaces PERSISTENCE_FAILED.
func (r *Repository) persist(ctx context.Context, doc *Document, appended *Transaction) error {
	doc.LastUpdated = FormatTimestamp(r.now())

	if r.primary != nil {
		start := time.Now()
		var err error
		if appended != nil {
			err = r.primary.AppendOne(ctx, appended)
		} else {
			err = r.primary.PersistAll(ctx, doc)
		}
		if err == nil {
			r.metrics.ObservePersist(metrics.BackendSheets, metrics.OutcomeSuccess, time.Since(start))
			return nil
		}
		r.metrics.ObservePersist(metrics.BackendSheets, metrics.OutcomeFailure, time.Since(start))
		if r.logg != nil {
			r.logg.Warn(r.logg.WithBackend(ctx, metrics.BackendSheets), "primary persist failed, writing fallback")
		}
	}

	start := time.Now()
	if err := r.fallback.Write(ctx, doc); err != nil {
		r.metrics.ObservePersist(metrics.BackendFile, metrics.OutcomeFailure, time.Since(start))
		if r.logg != nil {
			r.logg.Error(r.logg.WithBackend(ctx, metrics.BackendFile), "fallback persist failed", err)
		}
		return pkgerrors.Wrap(pkgerrors.CodePersistenceFailed, err, "no backend accepted the write")
	}
	r.metrics.ObservePersist(metrics.BackendFile, metrics.OutcomeSuccess, time.Since(start))
	return nil
}

func (r *Repository) buildTransaction(input TransactionInput) (*Transaction, error) {
	typ, err := enums.ParseTransactionType(input.Type)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transaction type")
	}
	partner, err := r.partners.Parse(input.Partner)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid partner")
	}
	amount, err := r.parseAmount(input.Amount.String())
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Date:        input.Date,
		Type:        typ,
		Partner:     partner,
		Description: input.Description,
		Amount:      types.NewLenientDecimal(amount),
	}, nil
}

func (r *Repository) applyPatch(t *Transaction, patch TransactionPatch) error {
	if patch.Type != nil {
		typ, err := enums.ParseTransactionType(*patch.Type)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid transaction type")
		}
		t.Type = typ
	}
	if patch.Partner != nil {
		partner, err := r.partners.Parse(*patch.Partner)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid partner")
		}
		t.Partner = partner
	}
	if patch.Amount != nil {
		amount, err := r.parseAmount(patch.Amount.String())
		if err != nil {
			return err
		}
		t.Amount = types.NewLenientDecimal(amount)
	}
	if patch.Date != nil {
		t.Date = *patch.Date
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	return nil
}

func (r *Repository) parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "amount must be a number")
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, pkgerrors.New(pkgerrors.CodeValidation, "amount must not be negative")
	}
	return amount, nil
}
