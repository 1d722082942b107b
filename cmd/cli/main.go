package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/money"
	"github.com/amirasaad/ledger/pkg/dto"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	log "github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  create <email> [initial_balance]
  get <account_id>
  deposit <account_id> <amount>
  transfer <source_account_id> <target_account_id> <amount>
  tx <transaction_id>
  history <account_id> [limit]`

var errUsage = errors.New("invalid arguments")

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		log.Fatal("Failed to connect to ledger store", "error", err)
	}
	a := app.New(deps, cfg)

	err = execute(context.Background(), a.AccountService, os.Args[1:], os.Stdout)
	_ = a.Close()
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Println(usage)
		}
		log.Error("Command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

// execute runs one CLI command against svc and prints the result as JSON.
func execute(ctx context.Context, svc *accountsvc.Service, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "create":
		if len(args) < 1 {
			return errUsage
		}
		c := commands.CreateAccount{Email: args[0]}
		if len(args) > 1 {
			bal, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("invalid initial balance %q: %w", args[1], err)
			}
			c.InitialBalance = &bal
		}
		a, err := svc.CreateAccount(ctx, c)
		if err != nil {
			return err
		}
		return printJSON(out, dto.ToAccountRead(a))
	case "get":
		id, err := parseIDs(args, 1)
		if err != nil {
			return err
		}
		a, err := svc.GetAccount(ctx, id[0])
		if err != nil {
			return err
		}
		return printJSON(out, dto.ToAccountRead(a))
	case "deposit":
		id, err := parseIDs(args, 1)
		if err != nil {
			return err
		}
		amount, err := parseAmount(args, 1)
		if err != nil {
			return err
		}
		a, err := svc.Deposit(ctx, commands.Deposit{AccountID: id[0], Amount: amount})
		if err != nil {
			return err
		}
		return printJSON(out, dto.ToAccountRead(a))
	case "transfer":
		ids, err := parseIDs(args, 2)
		if err != nil {
			return err
		}
		amount, err := parseAmount(args, 2)
		if err != nil {
			return err
		}
		tx, err := svc.Transfer(ctx, commands.Transfer{
			SourceAccountID: ids[0],
			TargetAccountID: ids[1],
			Amount:          amount,
		})
		if err != nil {
			return err
		}
		return printJSON(out, dto.ToTransactionRead(tx))
	case "tx":
		id, err := parseIDs(args, 1)
		if err != nil {
			return err
		}
		tx, err := svc.GetTransaction(ctx, id[0])
		if err != nil {
			return err
		}
		return printJSON(out, dto.ToTransactionRead(tx))
	case "history":
		id, err := parseIDs(args, 1)
		if err != nil {
			return err
		}
		limit := 0
		if len(args) > 1 {
			if limit, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid limit %q: %w", args[1], err)
			}
		}
		txs, err := svc.ListTransactions(ctx, id[0], limit)
		if err != nil {
			return err
		}
		return printJSON(out, dto.ToTransactionReads(txs))
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

// parseIDs reads the first n arguments as positive integer ids.
func parseIDs(args []string, n int) ([]int64, error) {
	if len(args) < n {
		return nil, errUsage
	}
	ids := make([]int64, n)
	for i := range n {
		id, err := strconv.ParseInt(args[i], 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", args[i])
		}
		ids[i] = id
	}
	return ids, nil
}

func parseAmount(args []string, pos int) (decimal.Decimal, error) {
	if len(args) <= pos {
		return decimal.Decimal{}, errUsage
	}
	return money.Parse(args[pos])
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
