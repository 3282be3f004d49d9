// Command trade is a command line client for trading against a brokerage
// API: inspect the account, submit and cancel orders, and list open orders.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/tradebot/gotrade/internal/commands"
	"github.com/tradebot/gotrade/pkg/broker"
	"github.com/tradebot/gotrade/pkg/config"
	"github.com/tradebot/gotrade/pkg/logger"
)

const usage = `usage:
  trade [flags] account
  trade [flags] order submit <buy|sell> <symbol> <quantity> [-l|--limit PRICE] [-s|--stop PRICE] [--today]
  trade [flags] order cancel <id>
  trade [flags] order list

flags:
  -v, --verbose   increase verbosity (can be supplied multiple times)
  --config PATH   read API settings from a YAML profile`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	verbosity, configPath, rest, err := parseGlobal(args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return errors.New("no command given\n" + usage)
	}

	if err := logger.Init(logger.Config{Level: logger.LevelForVerbosity(verbosity)}); err != nil {
		return err
	}

	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment variables")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return errors.Wrap(err, "failed to retrieve brokerage environment information")
	}

	client, err := broker.NewHTTPClient(cfg.BaseURL, cfg.KeyID, cfg.Secret)
	if err != nil {
		return errors.Wrap(err, "failed to create brokerage client")
	}

	runner := commands.NewRunner(client, out)
	ctx := context.Background()

	switch rest[0] {
	case "account":
		return runner.Account(ctx)
	case "order":
		return runOrder(ctx, runner, rest[1:])
	default:
		return errors.Errorf("unknown command %q\n%s", rest[0], usage)
	}
}

// parseGlobal consumes the global flags preceding the command and returns
// the remaining arguments.
func parseGlobal(args []string) (verbosity int, configPath string, rest []string, err error) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-v" || arg == "--verbose":
			verbosity++
		case strings.HasPrefix(arg, "-v") && strings.Trim(arg[1:], "v") == "":
			// Collapsed form, e.g. -vvv.
			verbosity += len(arg) - 1
		case arg == "--config":
			if i+1 >= len(args) {
				return 0, "", nil, errors.New("--config requires a path")
			}
			i++
			configPath = args[i]
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		default:
			return verbosity, configPath, args[i:], nil
		}
	}
	return verbosity, configPath, nil, nil
}

func runOrder(ctx context.Context, runner *commands.Runner, args []string) error {
	if len(args) == 0 {
		return errors.New("missing order subcommand (submit, cancel, list)")
	}
	switch args[0] {
	case "submit":
		return runOrderSubmit(ctx, runner, args[1:])
	case "cancel":
		if len(args) != 2 {
			return errors.New("usage: trade order cancel <id>")
		}
		id, err := broker.ParseOrderID(args[1])
		if err != nil {
			return err
		}
		logrus.WithField("id", id).Info("canceling order")
		return runner.CancelOrder(ctx, id)
	case "list":
		return runner.ListOrders(ctx)
	default:
		return errors.Errorf("unknown order subcommand %q", args[0])
	}
}

func runOrderSubmit(ctx context.Context, runner *commands.Runner, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: trade order submit <buy|sell> <symbol> <quantity> [-l|--limit PRICE] [-s|--stop PRICE] [--today]")
	}

	side, err := broker.ParseSide(args[0])
	if err != nil {
		return err
	}
	symbol := args[1]
	quantity, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		return errors.Errorf("%s is not a valid quantity (use a non-negative integer)", args[2])
	}

	fs := flag.NewFlagSet("order submit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var limit, stop decimalFlag
	fs.Var(&limit, "l", "limit price")
	fs.Var(&limit, "limit", "limit price")
	fs.Var(&stop, "s", "stop price")
	fs.Var(&stop, "stop", "stop price")
	today := fs.Bool("today", false, "order is only valid for today")
	if err := fs.Parse(args[3:]); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	logrus.WithFields(logrus.Fields{
		"side":   side,
		"symbol": symbol,
		"qty":    quantity,
	}).Info("submitting order")

	return runner.SubmitOrder(ctx, commands.SubmitParams{
		Side:       side,
		Symbol:     symbol,
		Quantity:   quantity,
		LimitPrice: limit.value,
		StopPrice:  stop.value,
		Today:      *today,
	})
}

// decimalFlag is a flag.Value holding an optional decimal price.
type decimalFlag struct {
	value *decimal.Decimal
}

func (f *decimalFlag) String() string {
	if f.value == nil {
		return ""
	}
	return f.value.String()
}

func (f *decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	f.value = &d
	return nil
}
