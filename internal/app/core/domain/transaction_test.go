package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionConstructors(t *testing.T) {
	t.Parallel()

	dep := NewDeposit("alice", 100)
	assert.Equal(t, Transaction{Type: TransactionTypeDeposit, Account: "alice", Amount: 100}, dep)

	wd := NewWithdraw("bob", 25)
	assert.Equal(t, Transaction{Type: TransactionTypeWithdraw, Account: "bob", Amount: 25}, wd)
}

func TestTransactionTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "deposit", TransactionTypeDeposit.String())
	assert.Equal(t, "withdraw", TransactionTypeWithdraw.String())
	assert.Equal(t, "unknown(9)", TransactionType(9).String())
}
