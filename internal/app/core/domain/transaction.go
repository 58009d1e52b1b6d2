package domain

import "fmt"

// TransactionType 交易類型
// 只有兩種值，使用 uint8 即可
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdraw TransactionType = 2
)

// String 回傳小寫類型名稱 (供 Shell 輸出與 Adapter 轉換使用)
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "deposit"
	case TransactionTypeWithdraw:
		return "withdraw"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(t))
	}
}

// Transaction 單筆已提交的餘額異動紀錄
// 以值傳遞且不可變；send 成功時會產生 (提款, 存款) 兩筆紀錄
type Transaction struct {
	Type    TransactionType
	Account string
	Amount  uint64
}

// NewDeposit 建立存款紀錄
func NewDeposit(account string, amount uint64) Transaction {
	return Transaction{
		Type:    TransactionTypeDeposit,
		Account: account,
		Amount:  amount,
	}
}

// NewWithdraw 建立提款紀錄
func NewWithdraw(account string, amount uint64) Transaction {
	return Transaction{
		Type:    TransactionTypeWithdraw,
		Account: account,
		Amount:  amount,
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s %d %q", t.Type, t.Amount, t.Account)
}
