package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/opentally/tally/internal/app/core/domain"
	"github.com/opentally/tally/internal/app/core/usecase"
)

// HttpServer 將帳本操作掛載為 REST API
//
// 結構:
//   - core: 核心用例
//   - logger: zap logger
//   - router: gorilla/mux 路由
type HttpServer struct {
	core   *usecase.CoreUseCase
	logger *zap.Logger
	router *mux.Router
}

// NewHttpServer 建立 HTTP 轉接器並註冊路由
//
// 參數:
//
//	core: 核心用例
//	logger: zap logger 實例
//
// 回傳:
//
//	*HttpServer: HTTP 轉接器
func NewHttpServer(core *usecase.CoreUseCase, logger *zap.Logger) *HttpServer {
	s := &HttpServer{
		core:   core,
		logger: logger,
		router: mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *HttpServer) routes() {
	s.router.Use(s.loggingMiddleware)
	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/accounts/{account}/deposit", s.handleDeposit).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/accounts/{account}/withdraw", s.handleWithdraw).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/accounts/{account}/balance", s.handleBalance).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/transfers", s.handleTransfer).Methods(http.MethodPost)
	s.router.HandleFunc("/v1/balances", s.handleBalances).Methods(http.MethodGet)
}

func (s *HttpServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type transactionRequest struct {
	RefID  string `json:"ref_id"`
	Amount uint64 `json:"amount"`
}

type transferRequest struct {
	RefID     string `json:"ref_id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Amount    uint64 `json:"amount"`
}

type transactionRecord struct {
	Type    string `json:"type"`
	Account string `json:"account"`
	Amount  uint64 `json:"amount"`
}

type transactionResponse struct {
	RefID   string            `json:"ref_id"`
	Record  transactionRecord `json:"record"`
	Balance uint64            `json:"balance"`
}

type transferResponse struct {
	RefID      string            `json:"ref_id"`
	Withdrawal transactionRecord `json:"withdrawal"`
	Deposit    transactionRecord `json:"deposit"`
}

type balanceResponse struct {
	Account string `json:"account"`
	Balance uint64 `json:"balance"`
}

type balancesResponse struct {
	Balances map[string]uint64 `json:"balances"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *HttpServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleDeposit 處理存款請求
func (s *HttpServer) handleDeposit(w http.ResponseWriter, r *http.Request) {
	account := mux.Vars(r)["account"]

	// 1. 解析請求
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := ensureRefID(&req.RefID); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	// 2. 執行交易
	record, err := s.core.Deposit(r.Context(), account, req.Amount)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	// 3. 取得最新餘額 (Best Effort)
	balance, _ := s.core.Balance(r.Context(), account)

	// 回應帶回 ref_id，伺服器補發時呼叫端才拿得到
	s.writeJSON(w, http.StatusOK, transactionResponse{
		RefID:   req.RefID,
		Record:  recordToJSON(record),
		Balance: balance,
	})
}

// handleWithdraw 處理提款請求
func (s *HttpServer) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	account := mux.Vars(r)["account"]

	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := ensureRefID(&req.RefID); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	record, err := s.core.Withdraw(r.Context(), account, req.Amount)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	balance, _ := s.core.Balance(r.Context(), account)

	s.writeJSON(w, http.StatusOK, transactionResponse{
		RefID:   req.RefID,
		Record:  recordToJSON(record),
		Balance: balance,
	})
}

// handleTransfer 處理轉帳請求
func (s *HttpServer) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if req.Sender == "" || req.Recipient == "" {
		s.writeError(w, http.StatusBadRequest, errors.New("sender and recipient are required"))
		return
	}
	if err := ensureRefID(&req.RefID); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	withdrawal, deposit, err := s.core.Send(r.Context(), req.Sender, req.Recipient, req.Amount)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, transferResponse{
		RefID:      req.RefID,
		Withdrawal: recordToJSON(withdrawal),
		Deposit:    recordToJSON(deposit),
	})
}

// handleBalance 查詢單一帳戶餘額
func (s *HttpServer) handleBalance(w http.ResponseWriter, r *http.Request) {
	account := mux.Vars(r)["account"]

	balance, err := s.core.Balance(r.Context(), account)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, balanceResponse{
		Account: account,
		Balance: balance,
	})
}

// handleBalances 取得全帳本餘額快照
func (s *HttpServer) handleBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.core.Balances(r.Context())
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, balancesResponse{Balances: balances})
}

// ensureRefID 空值時由伺服器補發，帶值時驗證格式
func ensureRefID(refID *string) error {
	if *refID == "" {
		*refID = uuid.NewString()
		return nil
	}
	if _, err := uuid.Parse(*refID); err != nil {
		return fmt.Errorf("invalid ref_id: %w", err)
	}
	return nil
}

// writeDomainError 將 Domain 錯誤對應至 HTTP 狀態碼
//
// 對應:
//
//	NotFoundError            -> 404
//	UnderFunded / OverFunded -> 422
func (s *HttpServer) writeDomainError(w http.ResponseWriter, err error) {
	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	var underErr *domain.UnderFundedError
	var overErr *domain.OverFundedError
	if errors.As(err, &underErr) || errors.As(err, &overErr) {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeError(w, http.StatusInternalServerError, err)
}

func (s *HttpServer) writeError(w http.ResponseWriter, code int, err error) {
	s.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func (s *HttpServer) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("write response failed", zap.Error(err))
	}
}

// loggingMiddleware 記錄每筆請求的結果
func (s *HttpServer) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("http handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func recordToJSON(tx domain.Transaction) transactionRecord {
	return transactionRecord{
		Type:    tx.Type.String(),
		Account: tx.Account,
		Amount:  tx.Amount,
	}
}
