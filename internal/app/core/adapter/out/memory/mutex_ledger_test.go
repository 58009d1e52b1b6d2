package memory

import (
	"context"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opentally/tally/internal/app/core/domain"
)

func TestDeposit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates the account on first deposit", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(nil)

		tx, err := ledger.Deposit(ctx, "alice", 100)
		require.NoError(t, err)
		assert.Equal(t, domain.NewDeposit("alice", 100), tx)

		balances, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]uint64{"alice": 100}, balances)
	})

	t.Run("accumulates on an existing account", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 100})

		_, err := ledger.Deposit(ctx, "alice", 50)
		require.NoError(t, err)

		balance, err := ledger.Balance(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, uint64(150), balance)
	})

	t.Run("zero amount still creates a visible entry", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(nil)

		_, err := ledger.Deposit(ctx, "alice", 0)
		require.NoError(t, err)

		// 餘額為 0 的帳戶與不存在的帳戶是不同狀態
		balances, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]uint64{"alice": 0}, balances)

		_, err = ledger.Withdraw(ctx, "alice", 0)
		assert.NoError(t, err)
	})

	t.Run("overflow is rejected without mutating anything", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": math.MaxUint64, "bob": 3})
		before, err := ledger.Balances(ctx)
		require.NoError(t, err)

		_, err = ledger.Deposit(ctx, "alice", 1)

		var overErr *domain.OverFundedError
		require.ErrorAs(t, err, &overErr)
		assert.Equal(t, "alice", overErr.Account)
		assert.Equal(t, uint64(1), overErr.Amount)

		after, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestWithdraw(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("subtracts from the balance", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 100})

		tx, err := ledger.Withdraw(ctx, "alice", 30)
		require.NoError(t, err)
		assert.Equal(t, domain.NewWithdraw("alice", 30), tx)

		balance, err := ledger.Balance(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, uint64(70), balance)
	})

	t.Run("underfunded withdrawal is rejected without mutating anything", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 70})

		_, err := ledger.Withdraw(ctx, "alice", 100)

		var underErr *domain.UnderFundedError
		require.ErrorAs(t, err, &underErr)
		assert.Equal(t, "alice", underErr.Account)
		assert.Equal(t, uint64(100), underErr.Amount)

		balance, err := ledger.Balance(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, uint64(70), balance)
	})

	t.Run("unknown account is rejected and never created", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 70})
		before, err := ledger.Balances(ctx)
		require.NoError(t, err)

		_, err = ledger.Withdraw(ctx, "ghost", 10)

		var notFoundErr *domain.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "ghost", notFoundErr.Account)

		after, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestSend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("moves the amount and returns both records", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 70, "bob": 5})

		withdrawal, deposit, err := ledger.Send(ctx, "alice", "bob", 30)
		require.NoError(t, err)
		assert.Equal(t, domain.NewWithdraw("alice", 30), withdrawal)
		assert.Equal(t, domain.NewDeposit("bob", 30), deposit)

		balances, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]uint64{"alice": 40, "bob": 35}, balances)
	})

	t.Run("creates the recipient if missing", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 10})

		_, _, err := ledger.Send(ctx, "alice", "carol", 4)
		require.NoError(t, err)

		balances, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]uint64{"alice": 6, "carol": 4}, balances)
	})

	t.Run("unknown sender fails before any mutation", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 10})
		before, err := ledger.Balances(ctx)
		require.NoError(t, err)

		_, _, err = ledger.Send(ctx, "ghost", "alice", 1)

		var notFoundErr *domain.NotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "ghost", notFoundErr.Account)

		after, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("underfunded sender fails before any mutation", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 5, "bob": 1})
		before, err := ledger.Balances(ctx)
		require.NoError(t, err)

		_, _, err = ledger.Send(ctx, "alice", "bob", 10)

		var underErr *domain.UnderFundedError
		require.ErrorAs(t, err, &underErr)
		assert.Equal(t, "alice", underErr.Account)
		assert.Equal(t, uint64(10), underErr.Amount)

		after, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("recipient overflow rolls the sender back", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 50, "bob": math.MaxUint64})

		_, _, err := ledger.Send(ctx, "alice", "bob", 10)

		// 回傳的是存款端的錯誤，指向 recipient
		var overErr *domain.OverFundedError
		require.ErrorAs(t, err, &overErr)
		assert.Equal(t, "bob", overErr.Account)
		assert.Equal(t, uint64(10), overErr.Amount)

		balances, err := ledger.Balances(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]uint64{"alice": 50, "bob": math.MaxUint64}, balances)
	})

	t.Run("sending to yourself nets to zero", func(t *testing.T) {
		t.Parallel()

		ledger := NewMutexLedger(map[string]uint64{"alice": 30})

		withdrawal, deposit, err := ledger.Send(ctx, "alice", "alice", 30)
		require.NoError(t, err)
		assert.Equal(t, domain.NewWithdraw("alice", 30), withdrawal)
		assert.Equal(t, domain.NewDeposit("alice", 30), deposit)

		balance, err := ledger.Balance(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, uint64(30), balance)
	})
}

func TestBalance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ledger := NewMutexLedger(map[string]uint64{"alice": 12})

	balance, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), balance)

	_, err = ledger.Balance(ctx, "ghost")
	var notFoundErr *domain.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
	assert.Equal(t, "ghost", notFoundErr.Account)
}

func TestBalancesIsACopy(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	ledger := NewMutexLedger(map[string]uint64{"alice": 100})

	snapshot, err := ledger.Balances(ctx)
	require.NoError(t, err)

	// 修改快照不可影響帳本
	snapshot["alice"] = 0
	snapshot["mallory"] = 999

	balance, err := ledger.Balance(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(100), balance)

	_, err = ledger.Balance(ctx, "mallory")
	assert.Error(t, err)

	// 帳本後續異動也不可影響既有快照
	fresh, err := ledger.Balances(ctx)
	require.NoError(t, err)
	_, err = ledger.Deposit(ctx, "alice", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), fresh["alice"])
}

func TestConcurrentSendsConserveTotal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	accounts := []string{"a", "b", "c", "d"}
	opening := make(map[string]uint64, len(accounts))
	for _, id := range accounts {
		opening[id] = 1_000_000
	}
	ledger := NewMutexLedger(opening)

	const (
		workers        = 8
		sendsPerWorker = 500
	)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < sendsPerWorker; i++ {
				sender := accounts[(w+i)%len(accounts)]
				recipient := accounts[(w+i+1)%len(accounts)]
				_, _, err := ledger.Send(ctx, sender, recipient, 1)
				assert.NoError(t, err)
			}
		}(w)
	}
	wg.Wait()

	balances, err := ledger.Balances(ctx)
	require.NoError(t, err)

	var total uint64
	for _, balance := range balances {
		total += balance
	}
	assert.Equal(t, uint64(len(accounts))*1_000_000, total)
}
