package ledger

import (
	"encoding/json"
	"time"

	"github.com/noumansaleem/partnership-ledger-backend/pkg/enums"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/types"
)

// Version is the ledger document schema version. The fallback file carries it
// so older documents stay readable if the shape ever changes.
const Version = "1.0"

// isoFormat is the wire timestamp layout: UTC with millisecond precision.
const isoFormat = "2006-01-02T15:04:05.000Z"

// Transaction is a single ledger entry. Entries are never removed from the
// document; deletion only flips the flag and stamps the deletion pair.
type Transaction struct {
	ID               int64                 `json:"id"`
	Date             string                `json:"date"`
	Type             enums.TransactionType `json:"type"`
	Partner          enums.Partner         `json:"partner"`
	Description      string                `json:"description"`
	Amount           types.LenientDecimal  `json:"amount"`
	Deleted          bool                  `json:"deleted"`
	CreatedAt        string                `json:"createdAt"`
	CreatedTimestamp int64                 `json:"createdTimestamp"`
	UpdatedAt        string                `json:"updatedAt"`
	UpdatedTimestamp int64                 `json:"updatedTimestamp"`
	DeletedAt        string                `json:"deletedAt,omitempty"`
	DeletedTimestamp int64                 `json:"deletedTimestamp,omitempty"`
}

// Document is the root aggregate: the full transaction log plus metadata.
type Document struct {
	Transactions []*Transaction `json:"transactions"`
	NextID       int64          `json:"nextId"`
	LastUpdated  string         `json:"lastUpdated"`
	Version      string         `json:"version"`
}

// NewDocument returns the legitimate empty ledger state.
func NewDocument(now time.Time) *Document {
	return &Document{
		Transactions: []*Transaction{},
		NextID:       1,
		LastUpdated:  FormatTimestamp(now),
		Version:      Version,
	}
}

// Find returns the transaction with the given id, or nil.
func (d *Document) Find(id int64) *Transaction {
	for _, t := range d.Transactions {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// MaxID returns the highest id present in the document, or zero when empty.
func (d *Document) MaxID() int64 {
	var max int64
	for _, t := range d.Transactions {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// Normalize repairs a loaded document so core invariants hold: a non-nil
// transaction slice, a version, and nextId strictly above every assigned id.
func (d *Document) Normalize() {
	if d.Transactions == nil {
		d.Transactions = []*Transaction{}
	}
	if d.Version == "" {
		d.Version = Version
	}
	if min := d.MaxID() + 1; d.NextID < min {
		d.NextID = min
	}
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Transactions: make([]*Transaction, 0, len(d.Transactions)),
		NextID:       d.NextID,
		LastUpdated:  d.LastUpdated,
		Version:      d.Version,
	}
	for _, t := range d.Transactions {
		copied := *t
		out.Transactions = append(out.Transactions, &copied)
	}
	return out
}

// TransactionInput is the caller-supplied shape for creating an entry.
// Amounts arrive as JSON numbers or numeric strings and are validated
// strictly here, unlike the lenient persisted form.
type TransactionInput struct {
	Date        string      `json:"date" validate:"required"`
	Type        string      `json:"type" validate:"required"`
	Partner     string      `json:"partner" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Amount      json.Number `json:"amount" validate:"required"`
}

// TransactionPatch carries the fields of an update; nil means unchanged.
type TransactionPatch struct {
	Date        *string      `json:"date"`
	Type        *string      `json:"type"`
	Partner     *string      `json:"partner"`
	Description *string      `json:"description"`
	Amount      *json.Number `json:"amount"`
}

// FormatTimestamp renders the ISO half of a timestamp pair.
func FormatTimestamp(now time.Time) string {
	return now.UTC().Format(isoFormat)
}

func (t *Transaction) markCreated(now time.Time) {
	iso, millis := FormatTimestamp(now), now.UnixMilli()
	t.Deleted = false
	t.CreatedAt, t.CreatedTimestamp = iso, millis
	t.UpdatedAt, t.UpdatedTimestamp = iso, millis
}

func (t *Transaction) markUpdated(now time.Time) {
	t.UpdatedAt, t.UpdatedTimestamp = FormatTimestamp(now), now.UnixMilli()
}

func (t *Transaction) markDeleted(now time.Time) {
	iso, millis := FormatTimestamp(now), now.UnixMilli()
	t.Deleted = true
	t.DeletedAt, t.DeletedTimestamp = iso, millis
	t.UpdatedAt, t.UpdatedTimestamp = iso, millis
}
