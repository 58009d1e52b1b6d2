package remote

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/opentally/tally/internal/app/core/domain"
	"github.com/opentally/tally/internal/app/core/usecase"
	pb "github.com/opentally/tally/proto"
)

// RemoteLedger 透過 gRPC 將帳本操作轉送至遠端 tallyd
//
// 結構:
//   - client: LedgerService gRPC client
type RemoteLedger struct {
	client pb.LedgerServiceClient
}

// NewRemoteLedger 建立遠端帳本轉接器
//
// 參數:
//
//	conn: 已建立的 gRPC 連線
//
// 回傳:
//
//	*RemoteLedger: 遠端帳本實例
func NewRemoteLedger(conn grpc.ClientConnInterface) *RemoteLedger {
	return &RemoteLedger{
		client: pb.NewLedgerServiceClient(conn),
	}
}

// Deposit 對遠端帳戶存款，每次呼叫產生新的 ref_id
func (l *RemoteLedger) Deposit(ctx context.Context, account string, amount uint64) (domain.Transaction, error) {
	reply, err := l.client.Deposit(ctx, &pb.DepositRequest{
		RefId:   uuid.NewString(),
		Account: account,
		Amount:  amount,
	})
	if err != nil {
		return domain.Transaction{}, domainFromStatus(err, account, account, amount)
	}
	return recordFromProto(reply.Record), nil
}

// Withdraw 自遠端帳戶提款
func (l *RemoteLedger) Withdraw(ctx context.Context, account string, amount uint64) (domain.Transaction, error) {
	reply, err := l.client.Withdraw(ctx, &pb.WithdrawRequest{
		RefId:   uuid.NewString(),
		Account: account,
		Amount:  amount,
	})
	if err != nil {
		return domain.Transaction{}, domainFromStatus(err, account, account, amount)
	}
	return recordFromProto(reply.Record), nil
}

// Send 透過遠端帳本進行轉帳
func (l *RemoteLedger) Send(ctx context.Context, sender, recipient string, amount uint64) (domain.Transaction, domain.Transaction, error) {
	reply, err := l.client.Send(ctx, &pb.SendRequest{
		RefId:     uuid.NewString(),
		Sender:    sender,
		Recipient: recipient,
		Amount:    amount,
	})
	if err != nil {
		return domain.Transaction{}, domain.Transaction{}, domainFromStatus(err, sender, recipient, amount)
	}
	return recordFromProto(reply.Withdrawal), recordFromProto(reply.Deposit), nil
}

// Balance 查詢遠端帳戶餘額
func (l *RemoteLedger) Balance(ctx context.Context, account string) (uint64, error) {
	reply, err := l.client.GetBalance(ctx, &pb.GetBalanceRequest{Account: account})
	if err != nil {
		return 0, domainFromStatus(err, account, account, 0)
	}
	return reply.Balance, nil
}

// Balances 取得遠端帳本全部餘額快照
func (l *RemoteLedger) Balances(ctx context.Context) (map[string]uint64, error) {
	reply, err := l.client.ListBalances(ctx, &pb.ListBalancesRequest{})
	if err != nil {
		return nil, err
	}

	balances := make(map[string]uint64, len(reply.Balances))
	for _, entry := range reply.Balances {
		balances[entry.Account] = entry.Balance
	}
	return balances, nil
}

// domainFromStatus 依 gRPC 狀態碼還原 Domain 錯誤
//
// NotFound 與 FailedPrecondition 歸屬扣款方，OutOfRange 歸屬入帳方；
// 其餘狀態碼 (連線中斷等) 原樣回傳。
func domainFromStatus(err error, from, to string, amount uint64) error {
	switch status.Code(err) {
	case codes.NotFound:
		return &domain.NotFoundError{Account: from}
	case codes.FailedPrecondition:
		return &domain.UnderFundedError{Account: from, Amount: amount}
	case codes.OutOfRange:
		return &domain.OverFundedError{Account: to, Amount: amount}
	default:
		return err
	}
}

// recordFromProto 將 Proto 紀錄轉回 Domain 紀錄
func recordFromProto(r *pb.TransactionRecord) domain.Transaction {
	if r == nil {
		return domain.Transaction{}
	}
	return domain.Transaction{
		Type:    typeFromProto(r.Type),
		Account: r.Account,
		Amount:  r.Amount,
	}
}

func typeFromProto(t pb.TransactionType) domain.TransactionType {
	switch t {
	case pb.TransactionType_TRANSACTION_TYPE_DEPOSIT:
		return domain.TransactionTypeDeposit
	case pb.TransactionType_TRANSACTION_TYPE_WITHDRAW:
		return domain.TransactionTypeWithdraw
	default:
		return domain.TransactionType(0)
	}
}

var _ usecase.Ledger = (*RemoteLedger)(nil)
