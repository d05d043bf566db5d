package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noumansaleem/partnership-ledger-backend/internal/ledger"
)

func TestReadMissingFileReturnsDefaultDocument(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "ledger.json"))

	doc, err := store.Read(context.Background())
	require.NoError(t, err, "a missing file is the empty ledger, not an error")
	assert.Empty(t, doc.Transactions)
	assert.EqualValues(t, 1, doc.NextID)
	assert.Equal(t, ledger.Version, doc.Version)
	assert.NotEmpty(t, doc.LastUpdated)
}

func TestReadCorruptFileReturnsDefaultDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	doc, err := New(path).Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Transactions)
	assert.EqualValues(t, 1, doc.NextID)
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	store := New(path)

	doc := ledger.NewDocument(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC))
	doc.Transactions = append(doc.Transactions, &ledger.Transaction{
		ID:          1,
		Date:        "2024-02-03",
		Type:        "Investment",
		Partner:     "Nouman",
		Description: "opening balance",
	})
	doc.Normalize()

	require.NoError(t, store.Write(context.Background(), doc))

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Transactions, 1)
	assert.EqualValues(t, 1, got.Transactions[0].ID)
	assert.Equal(t, doc.NextID, got.NextID)
	assert.Equal(t, doc.LastUpdated, got.LastUpdated)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := New(filepath.Join(dir, "ledger.json"))

	require.NoError(t, store.Write(context.Background(), ledger.NewDocument(time.Now())))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ledger.json", entries[0].Name())
}

func TestWriteOverwritesPreviousDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	store := New(path)

	first := ledger.NewDocument(time.Now())
	first.Transactions = append(first.Transactions, &ledger.Transaction{ID: 1})
	first.Normalize()
	require.NoError(t, store.Write(context.Background(), first))

	second := ledger.NewDocument(time.Now())
	require.NoError(t, store.Write(context.Background(), second))

	got, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got.Transactions, "replace must not merge with prior contents")
}
