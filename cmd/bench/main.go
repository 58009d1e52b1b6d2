package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	grpcpool "github.com/opentally/tally/pkg/grpc"
	pb "github.com/opentally/tally/proto"
)

func main() {
	target := flag.String("target", "localhost:50051", "tallyd gRPC address")
	total := flag.Int("total", 1000000, "total number of deposits to issue")
	concurrency := flag.Int("concurrency", 1000, "maximum in-flight requests")
	account := flag.String("account", "bench", "account receiving the deposits")
	flag.Parse()

	pool := grpcpool.NewPool()
	defer pool.Close()

	conn, err := pool.GetConnection(*target)
	if err != nil {
		log.Fatalf("did not connect: %v", err)
	}
	client := pb.NewLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(*total)

	// 以 semaphore 限制同時在途的請求數
	sem := make(chan struct{}, *concurrency)

	startTime := time.Now()

	for i := 0; i < *total; i++ {
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			_, err := client.Deposit(ctx, &pb.DepositRequest{
				RefId:   uuid.NewString(),
				Account: *account,
				Amount:  1,
			})
			if err != nil && idx%10000 == 0 {
				log.Printf("Deposit %d failed: %v", idx, err)
			}
		}(i)
	}

	wg.Wait()

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d requests in %v\n", *total, elapsed)
	fmt.Printf("TPS: %.2f\n", float64(*total)/elapsed.Seconds())
}
