package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/noumansaleem/partnership-ledger-backend/pkg/enums"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/types"
)

// Summary holds the derived totals for one partner, or for the partnership
// as a whole when no partner filter was applied.
type Summary struct {
	Investments types.LenientDecimal `json:"investments"`
	Expenses    types.LenientDecimal `json:"expenses"`
	Profits     types.LenientDecimal `json:"profits"`
	Withdrawals types.LenientDecimal `json:"withdrawals"`
	Balance     types.LenientDecimal `json:"balance"`
}

var two = decimal.NewFromInt(2)

// Summarize computes live totals over the non-deleted transactions.
//
// With a partner filter, rows for that partner count in full and shared
// "Both" rows contribute half each. With no filter (the combined view) every
// live row counts once at full value, shared rows included; the halves of a
// shared row sum back to its full amount, so the views stay consistent.
func Summarize(doc *Document, partner enums.Partner) Summary {
	var investments, expenses, profits, withdrawals decimal.Decimal

	for _, t := range doc.Transactions {
		if t.Deleted {
			continue
		}
		if partner != "" && t.Partner != partner && t.Partner != enums.PartnerBoth {
			continue
		}

		amount := t.Amount.Decimal
		if partner != "" && t.Partner == enums.PartnerBoth {
			amount = amount.Div(two)
		}

		switch t.Type {
		case enums.TransactionTypeInvestment:
			investments = investments.Add(amount)
		case enums.TransactionTypeExpense:
			expenses = expenses.Add(amount)
		case enums.TransactionTypeProfit:
			profits = profits.Add(amount)
		case enums.TransactionTypeWithdrawal:
			withdrawals = withdrawals.Add(amount)
		}
	}

	balance := investments.Add(profits).Sub(expenses.Add(withdrawals))

	return Summary{
		Investments: types.NewLenientDecimal(investments),
		Expenses:    types.NewLenientDecimal(expenses),
		Profits:     types.NewLenientDecimal(profits),
		Withdrawals: types.NewLenientDecimal(withdrawals),
		Balance:     types.NewLenientDecimal(balance),
	}
}
