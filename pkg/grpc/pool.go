package grpc

import (
	"fmt"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// Pool 管理通往多個目標的 gRPC 客戶端連線。
// 執行緒安全，每個目標地址只維護一個連線實例。
type Pool struct {
	conns       sync.Map // map[string]*grpc.ClientConn
	mu          sync.Mutex
	interceptor grpc.UnaryClientInterceptor
}

// PoolOption 定義 Pool 的配置選項函數
type PoolOption func(*Pool)

// WithUnaryInterceptor 設定套用到所有連線的 UnaryClientInterceptor，
// 用於統一處理 Logging 或 Auth Token 注入。
func WithUnaryInterceptor(interceptor grpc.UnaryClientInterceptor) PoolOption {
	return func(p *Pool) {
		p.interceptor = interceptor
	}
}

// NewPool 建立 gRPC 連線池
//
// 參數:
//
//	opts: 連線池配置選項
//
// 回傳:
//
//	*Pool: 連線池實例
func NewPool(opts ...PoolOption) *Pool {
	p := &Pool{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// GetConnection 取得現有連線，或為指定目標建立新連線
//
// 參數:
//
//	target: 目標伺服器地址 (e.g., "localhost:50051" 或 K8s DNS)
//	opts: 可選的額外 gRPC 連線選項
//
// 回傳:
//
//	*grpc.ClientConn: gRPC 客戶端連線物件
//	error: 建立連線失敗時回傳錯誤
func (p *Pool) GetConnection(target string, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	// 1. 嘗試讀取現有連線 (Fast path)
	if conn, ok := p.lookup(target); ok {
		return conn, nil
	}

	// 2. 加鎖防止並發重複建立 (Double-check locking)
	p.mu.Lock()
	defer p.mu.Unlock()

	if conn, ok := p.lookup(target); ok {
		return conn, nil
	}

	// 3. 建立新連線
	// grpc.NewClient 只建立虛擬連線，真正的網路連線延遲到第一次呼叫 (Lazy connection)
	conn, err := grpc.NewClient(target, p.dialOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("create grpc client for target %s: %w", target, err)
	}

	p.conns.Store(target, conn)
	return conn, nil
}

// lookup 回傳快取的連線，處於 Shutdown 狀態的連線會被移除
func (p *Pool) lookup(target string) (*grpc.ClientConn, bool) {
	v, ok := p.conns.Load(target)
	if !ok {
		return nil, false
	}
	conn := v.(*grpc.ClientConn)
	if conn.GetState() == connectivity.Shutdown {
		p.conns.Delete(target)
		return nil, false
	}
	return conn, true
}

// dialOptions 組合預設彈性選項與呼叫端追加的選項
func (p *Pool) dialOptions(extra []grpc.DialOption) []grpc.DialOption {
	// 內部服務通訊走私有網路，預設使用不加密連線
	options := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             time.Second,
			PermitWithoutStream: true,
		}),
	}
	if p.interceptor != nil {
		options = append(options, grpc.WithUnaryInterceptor(p.interceptor))
	}
	return append(options, extra...)
}

// Close 關閉連線池中的所有連線，回傳第一個發生的錯誤
func (p *Pool) Close() error {
	var firstErr error
	p.conns.Range(func(key, value any) bool {
		conn := value.(*grpc.ClientConn)
		if err := conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		p.conns.Delete(key)
		return true
	})
	return firstErr
}
