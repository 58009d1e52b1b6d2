package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/opentally/tally/internal/app/core/adapter/in/shell"
	memory_adapter "github.com/opentally/tally/internal/app/core/adapter/out/memory"
	remote_adapter "github.com/opentally/tally/internal/app/core/adapter/out/remote"
	"github.com/opentally/tally/internal/app/core/usecase"
	grpcpool "github.com/opentally/tally/pkg/grpc"
)

func main() {
	remoteAddr := flag.String("remote", "", "tallyd gRPC address; empty runs an in-process ledger")
	flag.Parse()

	// 1. 選擇 Ledger 後端
	var ledger usecase.Ledger
	if *remoteAddr == "" {
		ledger = memory_adapter.NewMutexLedger(nil)
	} else {
		pool := grpcpool.NewPool()
		defer pool.Close()

		conn, err := pool.GetConnection(*remoteAddr)
		if err != nil {
			log.Fatalf("Failed to connect to %s: %v", *remoteAddr, err)
		}
		ledger = remote_adapter.NewRemoteLedger(conn)
	}

	// 2. 進入命令迴圈
	sh := shell.New(usecase.NewCoreUseCase(ledger), os.Stdin, os.Stdout)
	if err := sh.Run(context.Background()); err != nil {
		log.Fatalf("Shell exited with error: %v", err)
	}
}
