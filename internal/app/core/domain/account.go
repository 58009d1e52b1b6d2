package domain

import "github.com/opentally/tally/pkg/safe"

// Account 帳戶與其當前餘額
type Account struct {
	ID      string
	Balance uint64
}

func NewAccount(id string, balance uint64) *Account {
	return &Account{
		ID:      id,
		Balance: balance,
	}
}

// Deposit 存款
// 溢位時回傳 OverFundedError 且餘額保持不變
func (a *Account) Deposit(amount uint64) error {
	sum, ok := safe.Add64(a.Balance, amount)
	if !ok {
		return &OverFundedError{Account: a.ID, Amount: amount}
	}

	a.Balance = sum
	return nil
}

// Withdraw 提款
// 餘額不足時回傳 UnderFundedError 且餘額保持不變
func (a *Account) Withdraw(amount uint64) error {
	diff, ok := safe.Sub64(a.Balance, amount)
	if !ok {
		return &UnderFundedError{Account: a.ID, Amount: amount}
	}

	a.Balance = diff
	return nil
}
