package usecase

import (
	"context"

	"github.com/opentally/tally/internal/app/core/domain"
)

// CoreUseCase 是核心業務邏輯層
type CoreUseCase struct {
	ledger Ledger
}

func NewCoreUseCase(ledger Ledger) *CoreUseCase {
	return &CoreUseCase{
		ledger: ledger,
	}
}

// Deposit 存入金額至指定帳戶
func (c *CoreUseCase) Deposit(ctx context.Context, account string, amount uint64) (domain.Transaction, error) {
	return c.ledger.Deposit(ctx, account, amount)
}

// Withdraw 自指定帳戶提領金額
func (c *CoreUseCase) Withdraw(ctx context.Context, account string, amount uint64) (domain.Transaction, error) {
	return c.ledger.Withdraw(ctx, account, amount)
}

// Send 將金額自 sender 匯至 recipient (不可分割)
func (c *CoreUseCase) Send(ctx context.Context, sender, recipient string, amount uint64) (domain.Transaction, domain.Transaction, error) {
	return c.ledger.Send(ctx, sender, recipient, amount)
}

// Balance 取得帳戶餘額
func (c *CoreUseCase) Balance(ctx context.Context, account string) (uint64, error) {
	return c.ledger.Balance(ctx, account)
}

// Balances 取得全帳本餘額快照
func (c *CoreUseCase) Balances(ctx context.Context) (map[string]uint64, error) {
	return c.ledger.Balances(ctx)
}
