package grpc

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/opentally/tally/internal/app/core/domain"
	"github.com/opentally/tally/internal/app/core/usecase"
	pb "github.com/opentally/tally/proto"
)

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	core *usecase.CoreUseCase
}

func NewGrpcServer(core *usecase.CoreUseCase) *GrpcServer {
	return &GrpcServer{
		core: core,
	}
}

// Deposit 處理存款請求
func (s *GrpcServer) Deposit(ctx context.Context, req *pb.DepositRequest) (*pb.TransactionReply, error) {
	// 1. UUID 解析
	if _, err := uuid.Parse(req.RefId); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ref_id: "+err.Error())
	}

	// 2. 執行交易
	record, err := s.core.Deposit(ctx, req.Account, req.Amount)
	if err != nil {
		return nil, statusFromDomain(err)
	}

	// 3. 取得最新餘額 (Best Effort)
	balance, _ := s.core.Balance(ctx, req.Account)

	return &pb.TransactionReply{
		Record:  recordToProto(record),
		Balance: balance,
	}, nil
}

// Withdraw 處理提款請求
func (s *GrpcServer) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.TransactionReply, error) {
	if _, err := uuid.Parse(req.RefId); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ref_id: "+err.Error())
	}

	record, err := s.core.Withdraw(ctx, req.Account, req.Amount)
	if err != nil {
		return nil, statusFromDomain(err)
	}

	balance, _ := s.core.Balance(ctx, req.Account)

	return &pb.TransactionReply{
		Record:  recordToProto(record),
		Balance: balance,
	}, nil
}

// Send 處理匯款請求，成功時回傳提款與存款兩筆紀錄
func (s *GrpcServer) Send(ctx context.Context, req *pb.SendRequest) (*pb.SendReply, error) {
	if _, err := uuid.Parse(req.RefId); err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid ref_id: "+err.Error())
	}

	withdrawal, deposit, err := s.core.Send(ctx, req.Sender, req.Recipient, req.Amount)
	if err != nil {
		return nil, statusFromDomain(err)
	}

	return &pb.SendReply{
		Withdrawal: recordToProto(withdrawal),
		Deposit:    recordToProto(deposit),
	}, nil
}

// GetBalance 查詢單一帳戶餘額
func (s *GrpcServer) GetBalance(ctx context.Context, req *pb.GetBalanceRequest) (*pb.GetBalanceReply, error) {
	balance, err := s.core.Balance(ctx, req.Account)
	if err != nil {
		return nil, statusFromDomain(err)
	}
	return &pb.GetBalanceReply{
		Account: req.Account,
		Balance: balance,
	}, nil
}

// ListBalances 取得全帳本餘額快照，項目依帳戶 ID 排序
func (s *GrpcServer) ListBalances(ctx context.Context, req *pb.ListBalancesRequest) (*pb.ListBalancesReply, error) {
	balances, err := s.core.Balances(ctx)
	if err != nil {
		return nil, statusFromDomain(err)
	}

	entries := make([]*pb.AccountBalance, 0, len(balances))
	for account, balance := range balances {
		entries = append(entries, &pb.AccountBalance{
			Account: account,
			Balance: balance,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Account < entries[j].Account
	})

	return &pb.ListBalancesReply{Balances: entries}, nil
}

// recordToProto 將 Domain 紀錄轉為 Proto 訊息
func recordToProto(tx domain.Transaction) *pb.TransactionRecord {
	return &pb.TransactionRecord{
		Type:    typeToProto(tx.Type),
		Account: tx.Account,
		Amount:  tx.Amount,
	}
}

func typeToProto(t domain.TransactionType) pb.TransactionType {
	switch t {
	case domain.TransactionTypeDeposit:
		return pb.TransactionType_TRANSACTION_TYPE_DEPOSIT
	case domain.TransactionTypeWithdraw:
		return pb.TransactionType_TRANSACTION_TYPE_WITHDRAW
	default:
		return pb.TransactionType_TRANSACTION_TYPE_UNSPECIFIED
	}
}

// statusFromDomain 將 Domain 錯誤轉為 gRPC Status 錯誤
//
// 對應:
//
//	NotFoundError    -> NotFound
//	UnderFundedError -> FailedPrecondition
//	OverFundedError  -> OutOfRange
func statusFromDomain(err error) error {
	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return status.Error(codes.NotFound, err.Error())
	}
	var underErr *domain.UnderFundedError
	if errors.As(err, &underErr) {
		return status.Error(codes.FailedPrecondition, err.Error())
	}
	var overErr *domain.OverFundedError
	if errors.As(err, &overErr) {
		return status.Error(codes.OutOfRange, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}
