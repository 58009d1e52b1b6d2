package http

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/opentally/tally/internal/app/core/adapter/out/memory"
	"github.com/opentally/tally/internal/app/core/usecase"
)

func newTestServer(opening map[string]uint64) *HttpServer {
	ledger := memory.NewMutexLedger(opening)
	return NewHttpServer(usecase.NewCoreUseCase(ledger), zap.NewNop())
}

func doRequest(t *testing.T, server *HttpServer, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestDepositEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("creates account and reports new balance", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(nil)

		rec := doRequest(t, server, http.MethodPost, "/v1/accounts/alice/deposit", `{"amount":100}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[transactionResponse](t, rec)
		assert.Equal(t, "deposit", resp.Record.Type)
		assert.Equal(t, "alice", resp.Record.Account)
		assert.Equal(t, uint64(100), resp.Record.Amount)
		assert.Equal(t, uint64(100), resp.Balance)

		// ref_id 為空時由伺服器補發並回傳
		minted, err := uuid.Parse(resp.RefID)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, minted)
	})

	t.Run("echoes a caller supplied ref_id", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(nil)

		rec := doRequest(t, server, http.MethodPost, "/v1/accounts/alice/deposit",
			`{"ref_id":"4b1c6b0e-8a52-4dbb-92f3-1c2f2a6c1a10","amount":5}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[transactionResponse](t, rec)
		assert.Equal(t, "4b1c6b0e-8a52-4dbb-92f3-1c2f2a6c1a10", resp.RefID)
	})

	t.Run("rejects malformed ref_id", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(nil)

		rec := doRequest(t, server, http.MethodPost, "/v1/accounts/alice/deposit",
			`{"ref_id":"not-a-uuid","amount":5}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeBody[errorResponse](t, rec)
		assert.Contains(t, resp.Error, "ref_id")
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(nil)

		rec := doRequest(t, server, http.MethodPost, "/v1/accounts/alice/deposit", `{"amount":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps overflow to 422", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(map[string]uint64{"alice": math.MaxUint64})

		rec := doRequest(t, server, http.MethodPost, "/v1/accounts/alice/deposit", `{"amount":1}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		resp := decodeBody[errorResponse](t, rec)
		assert.Contains(t, resp.Error, "alice")
	})

	t.Run("rejects wrong method", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(nil)

		rec := doRequest(t, server, http.MethodGet, "/v1/accounts/alice/deposit", "")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestWithdrawEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("subtracts and reports new balance", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(map[string]uint64{"alice": 100})

		rec := doRequest(t, server, http.MethodPost, "/v1/accounts/alice/withdraw", `{"amount":30}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[transactionResponse](t, rec)
		assert.Equal(t, "withdraw", resp.Record.Type)
		assert.Equal(t, uint64(70), resp.Balance)
	})

	t.Run("maps unknown account to 404", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(nil)

		rec := doRequest(t, server, http.MethodPost, "/v1/accounts/ghost/withdraw", `{"amount":1}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeBody[errorResponse](t, rec)
		assert.Contains(t, resp.Error, "ghost")
	})

	t.Run("maps underfunded to 422", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(map[string]uint64{"alice": 10})

		rec := doRequest(t, server, http.MethodPost, "/v1/accounts/alice/withdraw", `{"amount":11}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestTransferEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns withdrawal and deposit records", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(map[string]uint64{"alice": 50})

		rec := doRequest(t, server, http.MethodPost, "/v1/transfers",
			`{"sender":"alice","recipient":"bob","amount":20}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[transferResponse](t, rec)
		assert.NotEmpty(t, resp.RefID)
		assert.Equal(t, "withdraw", resp.Withdrawal.Type)
		assert.Equal(t, "alice", resp.Withdrawal.Account)
		assert.Equal(t, "deposit", resp.Deposit.Type)
		assert.Equal(t, "bob", resp.Deposit.Account)
		assert.Equal(t, uint64(20), resp.Deposit.Amount)
	})

	t.Run("requires sender and recipient", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(map[string]uint64{"alice": 50})

		rec := doRequest(t, server, http.MethodPost, "/v1/transfers",
			`{"sender":"alice","amount":20}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps unknown sender to 404", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(nil)

		rec := doRequest(t, server, http.MethodPost, "/v1/transfers",
			`{"sender":"ghost","recipient":"bob","amount":20}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("keeps sender intact when recipient overflows", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(map[string]uint64{
			"alice": 50,
			"bob":   math.MaxUint64,
		})

		rec := doRequest(t, server, http.MethodPost, "/v1/transfers",
			`{"sender":"alice","recipient":"bob","amount":20}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		balanceRec := doRequest(t, server, http.MethodGet, "/v1/accounts/alice/balance", "")
		require.Equal(t, http.StatusOK, balanceRec.Code)
		resp := decodeBody[balanceResponse](t, balanceRec)
		assert.Equal(t, uint64(50), resp.Balance)
	})
}

func TestBalanceEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("returns current balance", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(map[string]uint64{"alice": 42})

		rec := doRequest(t, server, http.MethodGet, "/v1/accounts/alice/balance", "")

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeBody[balanceResponse](t, rec)
		assert.Equal(t, "alice", resp.Account)
		assert.Equal(t, uint64(42), resp.Balance)
	})

	t.Run("maps unknown account to 404", func(t *testing.T) {
		t.Parallel()
		server := newTestServer(nil)

		rec := doRequest(t, server, http.MethodGet, "/v1/accounts/ghost/balance", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestBalancesEndpoint(t *testing.T) {
	t.Parallel()

	server := newTestServer(map[string]uint64{"alice": 1, "bob": 2})

	rec := doRequest(t, server, http.MethodGet, "/v1/balances", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[balancesResponse](t, rec)
	assert.Equal(t, map[string]uint64{"alice": 1, "bob": 2}, resp.Balances)
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	server := newTestServer(nil)

	rec := doRequest(t, server, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
