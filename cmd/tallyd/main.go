package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"

	grpc_adapter "github.com/opentally/tally/internal/app/core/adapter/in/grpc"
	http_adapter "github.com/opentally/tally/internal/app/core/adapter/in/http"
	memory_adapter "github.com/opentally/tally/internal/app/core/adapter/out/memory"
	"github.com/opentally/tally/internal/app/core/usecase"
	pb "github.com/opentally/tally/proto"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Ledger LedgerConfig `yaml:"ledger"`
}

type ServerConfig struct {
	GRPCAddr string `yaml:"grpc_addr"`
	HTTPAddr string `yaml:"http_addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type LedgerConfig struct {
	OpeningBalances map[string]uint64 `yaml:"opening_balances"`
}

func main() {
	// 1. 載入設定
	configPath := flag.String("config", "config/config.yaml", "path to the yaml config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. 初始化 Logger
	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync()

	// 3. 初始化 Ledger (Driven Adapter) 與 UseCase
	ledger := memory_adapter.NewMutexLedger(cfg.Ledger.OpeningBalances)
	coreUseCase := usecase.NewCoreUseCase(ledger)
	logger.Info("ledger initialized", zap.Int("accounts", len(cfg.Ledger.OpeningBalances)))

	// 4. 初始化 gRPC Server (Driving Adapter)
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Fatal("failed to listen", zap.String("addr", cfg.Server.GRPCAddr), zap.Error(err))
	}

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(grpc_adapter.NewUnaryLoggingInterceptor(logger)),
	)
	pb.RegisterLedgerServiceServer(grpcServer, grpc_adapter.NewGrpcServer(coreUseCase))
	reflection.Register(grpcServer) // 方便 gRPC Client 測試 (如 Postman/BloomRPC)

	// 5. 初始化 HTTP Server (Driving Adapter)
	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: http_adapter.NewHttpServer(coreUseCase, logger),
	}

	// 6. 啟動兩個 Server
	go func() {
		logger.Info("starting grpc server", zap.String("addr", cfg.Server.GRPCAddr))
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("grpc serve failed", zap.Error(err))
		}
	}()

	go func() {
		logger.Info("starting http server", zap.String("addr", cfg.Server.HTTPAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http serve failed", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown failed", zap.Error(err))
	}
	logger.Info("servers exited")
}

// loadConfig 讀取 yaml 設定檔
//
// 參數:
//
//	path: 設定檔路徑
//
// 回傳:
//
//	Config: 解析後的設定
//	error: 讀取或解析失敗時回傳錯誤
func loadConfig(path string) (Config, error) {
	cfgData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Server.GRPCAddr == "" {
		cfg.Server.GRPCAddr = ":50051"
	}
	if cfg.Server.HTTPAddr == "" {
		cfg.Server.HTTPAddr = ":8080"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

// newLogger 依設定層級建立 production zap logger
func newLogger(level string) (*zap.Logger, error) {
	parsed, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = parsed
	return cfg.Build()
}
