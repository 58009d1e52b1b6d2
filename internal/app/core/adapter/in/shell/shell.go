package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opentally/tally/internal/app/core/domain"
	"github.com/opentally/tally/internal/app/core/usecase"
)

const mainPrompt = "Please choose [deposit, withdraw, send, print, quit] and hit return:"

// Shell 互動式帳本命令迴圈
//
// 結構:
//   - core: 核心用例
//   - scanner: 命令輸入來源
//   - out: 提示與結果輸出
//   - txLog: 本次會談累積的交易紀錄
type Shell struct {
	core    *usecase.CoreUseCase
	scanner *bufio.Scanner
	out     io.Writer
	txLog   []domain.Transaction
}

// New 建立 Shell
//
// 參數:
//
//	core: 核心用例
//	in: 輸入來源 (通常為 os.Stdin)
//	out: 輸出目標 (通常為 os.Stdout)
//
// 回傳:
//
//	*Shell: Shell 實例
func New(core *usecase.CoreUseCase, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		core:    core,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run 進入命令迴圈，直到 quit 或輸入結束
//
// 單筆命令的失敗只會印出 encountered error 並繼續下一輪，
// 不會中斷整個迴圈。
func (s *Shell) Run(ctx context.Context) error {
	for {
		command, err := s.readLine(mainPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		quit, err := s.handle(ctx, command)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(s.out, "encountered error: %v\n", err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// Transactions 回傳本次會談累積的交易紀錄
func (s *Shell) Transactions() []domain.Transaction {
	return s.txLog
}

// handle 執行單一命令，quit 回傳 true 表示結束迴圈
func (s *Shell) handle(ctx context.Context, command string) (bool, error) {
	switch command {
	case "deposit":
		account, err := s.readLine("Account:")
		if err != nil {
			return false, err
		}
		amount, err := s.readAmount("Amount:")
		if err != nil {
			return false, err
		}
		tx, err := s.core.Deposit(ctx, account, amount)
		if err != nil {
			return false, err
		}
		s.txLog = append(s.txLog, tx)

	case "withdraw":
		account, err := s.readLine("Account:")
		if err != nil {
			return false, err
		}
		amount, err := s.readAmount("Amount:")
		if err != nil {
			return false, err
		}
		tx, err := s.core.Withdraw(ctx, account, amount)
		if err != nil {
			return false, err
		}
		s.txLog = append(s.txLog, tx)

	case "send":
		sender, err := s.readLine("Sender:")
		if err != nil {
			return false, err
		}
		amount, err := s.readAmount("Amount:")
		if err != nil {
			return false, err
		}
		recipient, err := s.readLine("Recipient:")
		if err != nil {
			return false, err
		}
		withdrawal, deposit, err := s.core.Send(ctx, sender, recipient, amount)
		if err != nil {
			return false, err
		}
		s.txLog = append(s.txLog, withdrawal, deposit)

	case "print":
		balances, err := s.core.Balances(ctx)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "ledger: %v\n", balances)

	case "quit":
		return true, nil

	default:
		fmt.Fprintln(s.out, "command not supported")
	}
	return false, nil
}

// readLine 印出提示並讀取一行，輸入耗盡時回傳 io.EOF
func (s *Shell) readLine(label string) (string, error) {
	fmt.Fprintln(s.out, label)
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.scanner.Text()), nil
}

// readAmount 讀取並解析非負整數金額
func (s *Shell) readAmount(label string) (uint64, error) {
	raw, err := s.readLine(label)
	if err != nil {
		return 0, err
	}
	amount, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amount, nil
}
