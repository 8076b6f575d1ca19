package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTransactionType_BalanceDelta(t *testing.T) {
	tests := []struct {
		txType   TransactionType
		amount   int64
		expected int64
	}{
		{TransactionTypeBooking, 1400, 1400},
		{TransactionTypeManualDebit, 200, 200},
		{TransactionTypePayment, 500, -500},
		{TransactionTypeReturn, 900, -900},
		{TransactionTypeManualCredit, 100, -100},
		{TransactionTypeAdjustment, 777, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.txType), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.txType.BalanceDelta(tt.amount))
		})
	}
}

func TestFoldBalance(t *testing.T) {
	entries := []CustomerTransaction{
		{Type: TransactionTypeBooking, Amount: 1400},
		{Type: TransactionTypePayment, Amount: 500},
		{Type: TransactionTypeReturn, Amount: 400},
		{Type: TransactionTypeManualDebit, Amount: 200},
		{Type: TransactionTypeAdjustment, Amount: 999},
		{Type: TransactionTypeManualCredit, Amount: 100},
	}
	assert.Equal(t, int64(600), FoldBalance(entries))
	assert.Equal(t, int64(0), FoldBalance(nil))
}

// TestFoldBalance_MatchesRunningSnapshots checks that replaying any log
// produced by sequential appends lands on the last entry's BalanceAfter,
// the audit rule the repository relies on.
func TestFoldBalance_MatchesRunningSnapshots(t *testing.T) {
	types := []TransactionType{
		TransactionTypeBooking,
		TransactionTypePayment,
		TransactionTypeReturn,
		TransactionTypeManualDebit,
		TransactionTypeManualCredit,
		TransactionTypeAdjustment,
	}

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(t, "entries")
		entries := make([]CustomerTransaction, 0, n)
		var balance int64
		for i := 0; i < n; i++ {
			txType := rapid.SampledFrom(types).Draw(t, "type")
			amount := rapid.Int64Range(1, 100000).Draw(t, "amount")
			before := balance
			balance += txType.BalanceDelta(amount)
			entries = append(entries, CustomerTransaction{
				Type:          txType,
				Amount:        amount,
				BalanceBefore: before,
				BalanceAfter:  balance,
			})
		}

		assert.Equal(t, entries[len(entries)-1].BalanceAfter, FoldBalance(entries))
	})
}

func TestTransactionType_Valid(t *testing.T) {
	assert.True(t, TransactionTypeBooking.Valid())
	assert.True(t, TransactionTypeAdjustment.Valid())
	assert.False(t, TransactionType("refund").Valid())
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentMethodUPI.Valid())
	assert.True(t, PaymentMethodBankTransfer.Valid())
	assert.False(t, PaymentMethod("cheque").Valid())
}
