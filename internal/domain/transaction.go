package domain

import "time"

type TransactionType string

const (
	TransactionTypeBooking      TransactionType = "booking"
	TransactionTypePayment      TransactionType = "payment"
	TransactionTypeReturn       TransactionType = "return"
	TransactionTypeManualDebit  TransactionType = "manual_debit"
	TransactionTypeManualCredit TransactionType = "manual_credit"
	TransactionTypeAdjustment   TransactionType = "adjustment"
)

// Valid reports whether t is one of the supported transaction kinds.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeBooking, TransactionTypePayment, TransactionTypeReturn,
		TransactionTypeManualDebit, TransactionTypeManualCredit, TransactionTypeAdjustment:
		return true
	}
	return false
}

// BalanceDelta is the fold rule: booking and manual_debit raise what the
// customer owes, payment, return and manual_credit lower it, adjustment is
// an audit note with no balance effect.
func (t TransactionType) BalanceDelta(amount int64) int64 {
	switch t {
	case TransactionTypeBooking, TransactionTypeManualDebit:
		return amount
	case TransactionTypePayment, TransactionTypeReturn, TransactionTypeManualCredit:
		return -amount
	default:
		return 0
	}
}

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

// Valid reports whether m is a supported payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodUPI, PaymentMethodCard, PaymentMethodBankTransfer:
		return true
	}
	return false
}

// CustomerTransaction is one append-only ledger entry. BalanceBefore and
// BalanceAfter are snapshots computed when the entry is written and are
// never recomputed; the log exposes no update or delete path.
type CustomerTransaction struct {
	ID            int32           `json:"id"`
	CustomerID    int32           `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	BookingID     *int32          `json:"booking_id,omitempty"`
	Type          TransactionType `json:"transaction_type"`
	Amount        int64           `json:"amount"`
	BalanceBefore int64           `json:"balance_before"`
	BalanceAfter  int64           `json:"balance_after"`
	PaymentMethod PaymentMethod   `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	CreatedOn     time.Time       `json:"created_on"`
}

// FoldBalance replays entries in chronological order and returns the net
// amount the customer owes. Used for audit verification against the
// maintained balance column.
func FoldBalance(entries []CustomerTransaction) int64 {
	var balance int64
	for _, e := range entries {
		balance += e.Type.BalanceDelta(e.Amount)
	}
	return balance
}

// LedgerSummary is the customer-facing view of the ledger.
type LedgerSummary struct {
	CustomerID         int32                 `json:"customer_id"`
	CustomerName       string                `json:"customer_name"`
	CurrentBalance     int64                 `json:"current_balance"`
	Status             string                `json:"status"` // "pending" when balance > 0, else "clear"
	TotalCharged       int64                 `json:"total_charged"`
	TotalPaid          int64                 `json:"total_paid"`
	RecentTransactions []CustomerTransaction `json:"recent_transactions"`
}
