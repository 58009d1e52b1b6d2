package domain

import "fmt"

// 帳本的業務錯誤皆為具名型別並攜帶帳戶與金額上下文，
// 呼叫端以 errors.As 判斷錯誤種類，不比對字串。

// NotFoundError 操作指向不存在的帳戶
type NotFoundError struct {
	Account string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("account %q not found", e.Account)
}

// UnderFundedError 提款金額超過帳戶餘額
type UnderFundedError struct {
	Account string
	// Amount 嘗試提領的金額
	Amount uint64
}

func (e *UnderFundedError) Error() string {
	return fmt.Sprintf("account %q is underfunded: required amount is %d", e.Account, e.Amount)
}

// OverFundedError 存款會使帳戶餘額溢位
type OverFundedError struct {
	Account string
	// Amount 嘗試存入的金額
	Amount uint64
}

func (e *OverFundedError) Error() string {
	return fmt.Sprintf("account %q is overfunded: depositing %d exceeds the balance limit", e.Account, e.Amount)
}
