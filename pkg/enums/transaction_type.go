package enums

import "fmt"

// TransactionType is the closed set of ledger entry kinds.
type TransactionType string

const (
	TransactionTypeInvestment TransactionType = "Investment"
	TransactionTypeExpense    TransactionType = "Expense"
	TransactionTypeProfit     TransactionType = "Profit"
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
)

var validTransactionTypes = []TransactionType{
	TransactionTypeInvestment,
	TransactionTypeExpense,
	TransactionTypeProfit,
	TransactionTypeWithdrawal,
}

// IsValid reports whether the value matches the canonical transaction type enum.
func (t TransactionType) IsValid() bool {
	for _, candidate := range validTransactionTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTransactionType converts raw input into TransactionType.
func ParseTransactionType(value string) (TransactionType, error) {
	for _, candidate := range validTransactionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid transaction type %q", value)
}
