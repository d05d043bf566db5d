package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/noumansaleem/partnership-ledger-backend/pkg/enums"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/types"
)

func summaryDoc(entries ...*Transaction) *Document {
	doc := NewDocument(time.Unix(0, 0))
	doc.Transactions = append(doc.Transactions, entries...)
	doc.Normalize()
	return doc
}

func entry(id int64, typ enums.TransactionType, partner enums.Partner, amount string, deleted bool) *Transaction {
	return &Transaction{
		ID:      id,
		Type:    typ,
		Partner: partner,
		Amount:  types.NewLenientDecimal(decimal.RequireFromString(amount)),
		Deleted: deleted,
	}
}

func assertAmount(t *testing.T, got types.LenientDecimal, want string, label string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("%s = %s, want %s", label, got.String(), want)
	}
}

func TestSummarizeSplitsSharedRowsPerPartner(t *testing.T) {
	doc := summaryDoc(
		entry(1, enums.TransactionTypeInvestment, enums.PartnerBoth, "100", false),
	)

	a := Summarize(doc, "Nouman")
	b := Summarize(doc, "Abdullah")
	combined := Summarize(doc, "")

	assertAmount(t, a.Investments, "50", "partner A investments")
	assertAmount(t, b.Investments, "50", "partner B investments")
	assertAmount(t, combined.Investments, "100", "combined investments")
}

func TestSummarizeBalanceArithmetic(t *testing.T) {
	doc := summaryDoc(
		entry(1, enums.TransactionTypeInvestment, "Nouman", "1000", false),
		entry(2, enums.TransactionTypeProfit, "Nouman", "250", false),
		entry(3, enums.TransactionTypeExpense, "Nouman", "300", false),
		entry(4, enums.TransactionTypeWithdrawal, "Nouman", "150", false),
	)

	got := Summarize(doc, "Nouman")
	assertAmount(t, got.Investments, "1000", "investments")
	assertAmount(t, got.Profits, "250", "profits")
	assertAmount(t, got.Expenses, "300", "expenses")
	assertAmount(t, got.Withdrawals, "150", "withdrawals")
	// (1000 + 250) - (300 + 150)
	assertAmount(t, got.Balance, "800", "balance")
}

func TestSummarizeExcludesDeletedAndOtherPartners(t *testing.T) {
	doc := summaryDoc(
		entry(1, enums.TransactionTypeInvestment, "Nouman", "500", false),
		entry(2, enums.TransactionTypeInvestment, "Nouman", "400", true),
		entry(3, enums.TransactionTypeInvestment, "Abdullah", "300", false),
	)

	a := Summarize(doc, "Nouman")
	assertAmount(t, a.Investments, "500", "live own rows only")

	combined := Summarize(doc, "")
	assertAmount(t, combined.Investments, "800", "combined skips deleted")
}

func TestSummarizeSharedRowsAcrossAllBuckets(t *testing.T) {
	doc := summaryDoc(
		entry(1, enums.TransactionTypeExpense, enums.PartnerBoth, "81", false),
		entry(2, enums.TransactionTypeWithdrawal, enums.PartnerBoth, "20", false),
	)

	a := Summarize(doc, "Nouman")
	assertAmount(t, a.Expenses, "40.5", "half of shared expense")
	assertAmount(t, a.Withdrawals, "10", "half of shared withdrawal")
	assertAmount(t, a.Balance, "-50.5", "partner balance")

	combined := Summarize(doc, "")
	assertAmount(t, combined.Expenses, "81", "full shared expense")
	assertAmount(t, combined.Balance, "-101", "combined balance")
}

func TestSummarizeIsPureOverTheDocument(t *testing.T) {
	doc := summaryDoc(
		entry(1, enums.TransactionTypeProfit, enums.PartnerBoth, "60", false),
	)

	first := Summarize(doc, "Nouman")
	second := Summarize(doc, "Nouman")
	if !first.Profits.Equal(second.Profits.Decimal) || !first.Balance.Equal(second.Balance.Decimal) {
		t.Fatal("recomputing over the same document must give identical results")
	}
}
