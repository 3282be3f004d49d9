package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/tradebot/gotrade/pkg/broker"
)

// formatAccountStatus maps an account status to its report text. A status
// outside the published set means the API contract changed under us.
func formatAccountStatus(status broker.Status) string {
	switch status {
	case broker.StatusOnboarding:
		return "onboarding"
	case broker.StatusSubmissionFailed:
		return "submission failed"
	case broker.StatusSubmitted:
		return "submitted"
	case broker.StatusUpdating:
		return "updating"
	case broker.StatusApprovalPending:
		return "approval pending"
	case broker.StatusActive:
		return "active"
	case broker.StatusRejected:
		return "rejected"
	default:
		panic(fmt.Sprintf("unknown account status %q", string(status)))
	}
}

// Account fetches the account snapshot and prints it as a fixed-field
// report.
func (r *Runner) Account(ctx context.Context) error {
	account, err := r.client.GetAccount(ctx)
	if err != nil {
		return err
	}
	renderAccount(r.out, account)
	return nil
}

func renderAccount(w io.Writer, account *broker.Account) {
	currency := account.Currency
	fmt.Fprintf(w, `account:
  id:                %s
  status:            %s
  buying power:      %s %s
  cash:              %s %s
  withdrawable cash: %s %s
  portfolio value:   %s %s
  day trader:        %t
  trading blocked:   %t
  transfers blocked: %t
  account blocked:   %t
`,
		account.ID,
		formatAccountStatus(account.Status),
		account.BuyingPower, currency,
		account.Cash, currency,
		account.WithdrawableCash, currency,
		account.PortfolioValue, currency,
		account.DayTrader,
		account.TradingBlocked,
		account.TransfersBlocked,
		account.AccountBlocked,
	)
}
