package usecase

import (
	"context"

	"github.com/opentally/tally/internal/app/core/domain"
)

// Ledger 是帳本核心的出站介面
// In-Process (memory) 與遠端 (gRPC) 實作皆滿足此介面
type Ledger interface {
	// Deposit 存款；帳戶不存在時自動建立
	Deposit(ctx context.Context, account string, amount uint64) (domain.Transaction, error)
	// Withdraw 提款
	Withdraw(ctx context.Context, account string, amount uint64) (domain.Transaction, error)
	// Send 匯款；成功時回傳 (提款紀錄, 存款紀錄)
	Send(ctx context.Context, sender, recipient string, amount uint64) (domain.Transaction, domain.Transaction, error)
	// Balance 取得單一帳戶的當前餘額
	Balance(ctx context.Context, account string) (uint64, error)
	// Balances 取得全帳本餘額快照
	Balances(ctx context.Context) (map[string]uint64, error)
}
