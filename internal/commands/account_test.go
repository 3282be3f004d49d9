package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradebot/gotrade/pkg/broker"
)

func testAccount() *broker.Account {
	return &broker.Account{
		ID:               uuid.MustParse("e6e046af-bf5a-40c6-b2a9-f72f4e701b67"),
		Status:           broker.StatusActive,
		Currency:         "USD",
		BuyingPower:      decimal.RequireFromString("36282.84"),
		Cash:             decimal.RequireFromString("4000.12"),
		WithdrawableCash: decimal.RequireFromString("3900.5"),
		PortfolioValue:   decimal.RequireFromString("43000.99"),
		DayTrader:        false,
		TradingBlocked:   false,
		TransfersBlocked: false,
		AccountBlocked:   true,
	}
}

const wantAccountReport = `account:
  id:                e6e046af-bf5a-40c6-b2a9-f72f4e701b67
  status:            active
  buying power:      36282.84 USD
  cash:              4000.12 USD
  withdrawable cash: 3900.5 USD
  portfolio value:   43000.99 USD
  day trader:        false
  trading blocked:   false
  transfers blocked: false
  account blocked:   true
`

func TestAccountReport(t *testing.T) {
	mock := broker.NewMockClient()
	mock.AccountResponse = testAccount()

	var out bytes.Buffer
	runner := NewRunner(mock, &out)
	require.NoError(t, runner.Account(context.Background()))
	assert.Equal(t, wantAccountReport, out.String())
}

func TestAccountReportIdempotent(t *testing.T) {
	account := testAccount()

	var first, second bytes.Buffer
	renderAccount(&first, account)
	renderAccount(&second, account)
	assert.Equal(t, first.String(), second.String())
}

func TestFormatAccountStatus(t *testing.T) {
	tests := []struct {
		status broker.Status
		want   string
	}{
		{broker.StatusOnboarding, "onboarding"},
		{broker.StatusSubmissionFailed, "submission failed"},
		{broker.StatusSubmitted, "submitted"},
		{broker.StatusUpdating, "updating"},
		{broker.StatusApprovalPending, "approval pending"},
		{broker.StatusActive, "active"},
		{broker.StatusRejected, "rejected"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAccountStatus(tt.status))
	}
}

func TestFormatAccountStatusUnknownPanics(t *testing.T) {
	assert.Panics(t, func() {
		formatAccountStatus(broker.Status("PAUSED"))
	})
}

func TestAccountErrorPropagatesUnchanged(t *testing.T) {
	mock := broker.NewMockClient()
	mock.ErrorOnNext["GetAccount"] = errors.New("failed to retrieve account information: timeout")

	var out bytes.Buffer
	runner := NewRunner(mock, &out)
	err := runner.Account(context.Background())
	require.EqualError(t, err, "failed to retrieve account information: timeout")
	assert.Empty(t, out.String())
}
