package memory

import (
	"context"
	"sync"

	"github.com/opentally/tally/internal/app/core/domain"
	"github.com/opentally/tally/internal/app/core/usecase"
)

// MutexLedger 是一個使用單一 Mutex 保護的記憶體帳本
//
// 結構:
//
//	accounts: 帳戶資料 Map (key 為帳戶 ID)
//	mu: RWMutex 用於保護帳戶資料
//
// 所有異動在同一把鎖內完成，Send 因此不可分割:
// 任何讀取都不會觀察到只完成一半的匯款。
type MutexLedger struct {
	accounts map[string]*domain.Account
	mu       sync.RWMutex
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 參數:
//
//	opening: 初始帳戶餘額 (可為 nil，表示空帳本)
//
// 回傳:
//
//	*MutexLedger: MutexLedger 實例
func NewMutexLedger(opening map[string]uint64) *MutexLedger {
	accounts := make(map[string]*domain.Account, len(opening))
	for id, balance := range opening {
		accounts[id] = domain.NewAccount(id, balance)
	}
	return &MutexLedger{
		accounts: accounts,
		mu:       sync.RWMutex{},
	}
}

// Deposit 存款至指定帳戶，帳戶不存在時自動建立
//
// 參數:
//
//	ctx: 上下文
//	account: 帳戶 ID
//	amount: 存入金額
//
// 回傳:
//
//	domain.Transaction: 存款紀錄
//	error: 處理錯誤 (如餘額溢位)
func (m *MutexLedger) Deposit(ctx context.Context, account string, amount uint64) (domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handleDeposit(account, amount)
}

// Withdraw 自指定帳戶提款
//
// 回傳:
//
//	domain.Transaction: 提款紀錄
//	error: 處理錯誤 (如帳戶不存在、餘額不足)
func (m *MutexLedger) Withdraw(ctx context.Context, account string, amount uint64) (domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handleWithdraw(account, amount)
}

// Send 將金額自 sender 匯至 recipient，整體不可分割
//
// 流程: 先對 sender 餘額做快照，再依序執行提款與存款；
// 存款失敗時還原快照並回傳存款的錯誤，整體視同未發生。
func (m *MutexLedger) Send(ctx context.Context, sender, recipient string, amount uint64) (domain.Transaction, domain.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	fromAccount, ok := m.accounts[sender]
	if !ok {
		return domain.Transaction{}, domain.Transaction{}, &domain.NotFoundError{Account: sender}
	}

	// 快照 sender 餘額，供存款失敗時還原
	snapshot := fromAccount.Balance

	withdrawal, err := m.handleWithdraw(sender, amount)
	if err != nil {
		return domain.Transaction{}, domain.Transaction{}, err
	}

	deposit, err := m.handleDeposit(recipient, amount)
	if err != nil {
		fromAccount.Balance = snapshot
		return domain.Transaction{}, domain.Transaction{}, err
	}

	return withdrawal, deposit, nil
}

// Balance 取得指定帳戶的當前餘額
//
// 回傳:
//
//	uint64: 帳戶餘額
//	error: 查詢錯誤 (如帳戶不存在)
func (m *MutexLedger) Balance(ctx context.Context, account string) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	acct, ok := m.accounts[account]
	if !ok {
		return 0, &domain.NotFoundError{Account: account}
	}
	return acct.Balance, nil
}

// Balances 取得全帳本餘額快照
// 回傳的 Map 是複本，呼叫端可任意修改
func (m *MutexLedger) Balances(ctx context.Context) (map[string]uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snapshot := make(map[string]uint64, len(m.accounts))
	for id, acct := range m.accounts {
		snapshot[id] = acct.Balance
	}
	return snapshot, nil
}

// handleDeposit 處理存款邏輯 (呼叫端須持有寫鎖)
func (m *MutexLedger) handleDeposit(account string, amount uint64) (domain.Transaction, error) {
	toAccount, ok := m.accounts[account]
	if !ok {
		// 首次存款即建立帳戶；金額為 0 也會留下帳戶
		m.accounts[account] = domain.NewAccount(account, amount)
		return domain.NewDeposit(account, amount), nil
	}

	if err := toAccount.Deposit(amount); err != nil {
		return domain.Transaction{}, err
	}
	return domain.NewDeposit(account, amount), nil
}

// handleWithdraw 處理提款邏輯 (呼叫端須持有寫鎖)
func (m *MutexLedger) handleWithdraw(account string, amount uint64) (domain.Transaction, error) {
	fromAccount, ok := m.accounts[account]
	if !ok {
		return domain.Transaction{}, &domain.NotFoundError{Account: account}
	}

	if err := fromAccount.Withdraw(amount); err != nil {
		return domain.Transaction{}, err
	}
	return domain.NewWithdraw(account, amount), nil
}

var _ usecase.Ledger = (*MutexLedger)(nil)
