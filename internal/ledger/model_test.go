package ledger

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewDocumentDefaults(t *testing.T) {
	doc := NewDocument(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	if doc.NextID != 1 {
		t.Fatalf("fresh document must start at nextId 1, got %d", doc.NextID)
	}
	if doc.Version != Version {
		t.Fatalf("unexpected version %q", doc.Version)
	}
	if doc.Transactions == nil || len(doc.Transactions) != 0 {
		t.Fatal("fresh document must carry an empty, non-nil log")
	}
	if doc.LastUpdated != "2024-01-01T00:00:00.000Z" {
		t.Fatalf("unexpected lastUpdated %q", doc.LastUpdated)
	}
}

func TestNormalizeRepairsInvariants(t *testing.T) {
	doc := &Document{
		Transactions: []*Transaction{{ID: 9}, {ID: 4}},
		NextID:       2,
	}
	doc.Normalize()

	if doc.NextID != 10 {
		t.Fatalf("nextId must exceed the max id: got %d", doc.NextID)
	}
	if doc.Version != Version {
		t.Fatalf("version not defaulted: %q", doc.Version)
	}

	nilSlice := &Document{NextID: 1}
	nilSlice.Normalize()
	if nilSlice.Transactions == nil {
		t.Fatal("nil transaction slice must become empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	doc := NewDocument(time.Unix(0, 0))
	doc.Transactions = append(doc.Transactions, &Transaction{ID: 1, Description: "original"})

	clone := doc.Clone()
	clone.Transactions[0].Description = "changed"
	clone.NextID = 99

	if doc.Transactions[0].Description != "original" {
		t.Fatal("clone mutation leaked into the source document")
	}
	if doc.NextID == 99 {
		t.Fatal("clone metadata mutation leaked")
	}
}

func TestTransactionWireFormat(t *testing.T) {
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	tx := &Transaction{ID: 12, Date: "2024-05-06", Type: "Expense", Partner: "Both", Description: "hosting"}
	tx.markCreated(now)

	out, err := json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(out)

	for _, field := range []string{
		`"id":12`, `"date":"2024-05-06"`, `"type":"Expense"`, `"partner":"Both"`,
		`"deleted":false`, `"createdAt"`, `"createdTimestamp"`, `"updatedAt"`, `"updatedTimestamp"`,
	} {
		if !strings.Contains(body, field) {
			t.Fatalf("wire format missing %s in %s", field, body)
		}
	}
	if strings.Contains(body, "deletedAt") {
		t.Fatalf("deletion pair must be absent until soft delete: %s", body)
	}

	tx.markDeleted(now.Add(time.Minute))
	out, err = json.Marshal(tx)
	if err != nil {
		t.Fatalf("marshal after delete: %v", err)
	}
	if !strings.Contains(string(out), `"deletedAt"`) || !strings.Contains(string(out), `"deletedTimestamp"`) {
		t.Fatalf("deletion pair missing after soft delete: %s", out)
	}
}

func TestDocumentFind(t *testing.T) {
	doc := NewDocument(time.Unix(0, 0))
	doc.Transactions = append(doc.Transactions, &Transaction{ID: 2}, &Transaction{ID: 5})

	if got := doc.Find(5); got == nil || got.ID != 5 {
		t.Fatalf("expected to find id 5, got %+v", got)
	}
	if doc.Find(3) != nil {
		t.Fatal("expected nil for absent id")
	}
}
