// Package sheetstore persists the ledger against a Google Sheets
// spreadsheet, one transaction per row. It is the primary backend; every
// failure surfaces as a BACKEND_UNAVAILABLE error so the repository can
// degrade to the local fallback instead of crashing.
package sheetstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/noumansaleem/partnership-ledger-backend/internal/ledger"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/enums"
	pkgerrors "github.com/noumansaleem/partnership-ledger-backend/pkg/errors"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/types"
)

// SheetClient is the spreadsheet surface the store needs. *sheets.Client
// satisfies it; tests substitute a fake.
type SheetClient interface {
	SheetName() string
	Values(ctx context.Context, rng string) ([][]any, error)
	Update(ctx context.Context, rng string, values [][]any) error
	Clear(ctx context.Context, rng string) error
	Append(ctx context.Context, rng string, values [][]any) error
}

// Column order of the transaction sheet, header row included.
var headerRow = []any{
	"id", "date", "type", "partner", "description", "amount", "deleted",
	"createdAt", "createdTimestamp", "updatedAt", "updatedTimestamp",
	"deletedAt", "deletedTimestamp",
}

type Store struct {
	client SheetClient
	now    func() time.Time
}

// New returns a store writing through the given sheet client.
func New(client SheetClient) *Store {
	return &Store{client: client, now: time.Now}
}

func (s *Store) dataRange() string  { return fmt.Sprintf("%s!A2:M", s.client.SheetName()) }
func (s *Store) fullRange() string  { return fmt.Sprintf("%s!A1:M", s.client.SheetName()) }
func (s *Store) tableRange() string { return fmt.Sprintf("%s!A1", s.client.SheetName()) }

// FetchAll reads every data row and reconstructs the ledger document.
// Rows without a usable id are skipped; malformed cells default rather than
// poisoning the whole document. nextId is rebuilt as 1 + the highest id seen.
func (s *Store) FetchAll(ctx context.Context) (*ledger.Document, error) {
	if s == nil || s.client == nil {
		return nil, pkgerrors.New(pkgerrors.CodeBackendUnavailable, "no spreadsheet configured")
	}

	rows, err := s.client.Values(ctx, s.dataRange())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeBackendUnavailable, err, "fetching transaction rows")
	}

	doc := ledger.NewDocument(s.now())
	for _, row := range rows {
		if t, ok := parseRow(row); ok {
			doc.Transactions = append(doc.Transactions, t)
		}
	}
	doc.Normalize()
	return doc, nil
}

// PersistAll replaces the sheet contents with the document's transactions.
// A full clear-then-write keeps the sheet consistent even after a partial
// earlier failure; the same input always produces the same sheet.
func (s *Store) PersistAll(ctx context.Context, doc *ledger.Document) error {
	if s == nil || s.client == nil {
		return pkgerrors.New(pkgerrors.CodeBackendUnavailable, "no spreadsheet configured")
	}

	values := make([][]any, 0, len(doc.Transactions)+1)
	values = append(values, headerRow)
	for _, t := range doc.Transactions {
		values = append(values, rowFor(t))
	}

	if err := s.client.Clear(ctx, s.fullRange()); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeBackendUnavailable, err, "clearing transaction sheet")
	}
	if err := s.client.Update(ctx, s.tableRange(), values); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeBackendUnavailable, err, "writing transaction rows")
	}
	return nil
}

// AppendOne adds a single transaction row, avoiding a full rewrite for the
// common insert path. Failures mean the same thing as PersistAll failures.
func (s *Store) AppendOne(ctx context.Context, t *ledger.Transaction) error {
	if s == nil || s.client == nil {
		return pkgerrors.New(pkgerrors.CodeBackendUnavailable, "no spreadsheet configured")
	}
	if err := s.client.Append(ctx, s.tableRange(), [][]any{rowFor(t)}); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeBackendUnavailable, err, "appending transaction row")
	}
	return nil
}

func rowFor(t *ledger.Transaction) []any {
	return []any{
		strconv.FormatInt(t.ID, 10),
		t.Date,
		string(t.Type),
		string(t.Partner),
		t.Description,
		t.Amount.String(),
		strconv.FormatBool(t.Deleted),
		t.CreatedAt,
		strconv.FormatInt(t.CreatedTimestamp, 10),
		t.UpdatedAt,
		strconv.FormatInt(t.UpdatedTimestamp, 10),
		t.DeletedAt,
		strconv.FormatInt(t.DeletedTimestamp, 10),
	}
}

// parseRow maps one sheet row back into a transaction. Only the id is
// load-bearing: rows without a positive integer id are dropped, everything
// else degrades to a zero value.
func parseRow(row []any) (*ledger.Transaction, bool) {
	id := parseInt(cell(row, 0))
	if id <= 0 {
		return nil, false
	}
	return &ledger.Transaction{
		ID:               id,
		Date:             cell(row, 1),
		Type:             enums.TransactionType(cell(row, 2)),
		Partner:          enums.Partner(cell(row, 3)),
		Description:      cell(row, 4),
		Amount:           types.ParseLenientDecimal(cell(row, 5)),
		Deleted:          parseBool(cell(row, 6)),
		CreatedAt:        cell(row, 7),
		CreatedTimestamp: parseInt(cell(row, 8)),
		UpdatedAt:        cell(row, 9),
		UpdatedTimestamp: parseInt(cell(row, 10)),
		DeletedAt:        cell(row, 11),
		DeletedTimestamp: parseInt(cell(row, 12)),
	}, true
}

func cell(row []any, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}

func parseInt(value string) int64 {
	if value == "" {
		return 0
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseBool(value string) bool {
	return strings.EqualFold(value, "true") || value == "1"
}
