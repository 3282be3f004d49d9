package broker

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Side is the direction of an order.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// ParseSide parses a side token as supplied on the command line. Only the
// lowercase tokens "buy" and "sell" are accepted.
func ParseSide(s string) (Side, error) {
	switch s {
	case "buy":
		return SideBuy, nil
	case "sell":
		return SideSell, nil
	default:
		return "", errors.Errorf("%s is not a valid side specification (use 'buy' or 'sell')", s)
	}
}

// Type is the execution type of an order. It is never supplied directly by
// the user but derived from which of the limit/stop prices are set.
type Type string

const (
	TypeMarket    Type = "market"
	TypeLimit     Type = "limit"
	TypeStop      Type = "stop"
	TypeStopLimit Type = "stop_limit"
)

// TimeInForce is the duration policy for an order's validity.
type TimeInForce string

const (
	TimeInForceDay           TimeInForce = "day"
	TimeInForceUntilCanceled TimeInForce = "gtc"
)

// Status is the state of a brokerage account.
type Status string

const (
	StatusOnboarding       Status = "ONBOARDING"
	StatusSubmissionFailed Status = "SUBMISSION_FAILED"
	StatusSubmitted        Status = "SUBMITTED"
	StatusUpdating         Status = "UPDATING"
	StatusApprovalPending  Status = "APPROVAL_PENDING"
	StatusActive           Status = "ACTIVE"
	StatusRejected         Status = "REJECTED"
)

// OrderID is the identifier of a single order.
type OrderID struct {
	uuid.UUID
}

// ParseOrderID parses an order identifier from its canonical hyphenated
// textual form.
func ParseOrderID(s string) (OrderID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{UUID: id}, nil
}

// Account is a read-only snapshot of the trading account.
type Account struct {
	ID               uuid.UUID       `json:"id"`
	Status           Status          `json:"status"`
	Currency         string          `json:"currency"`
	BuyingPower      decimal.Decimal `json:"buying_power"`
	Cash             decimal.Decimal `json:"cash"`
	WithdrawableCash decimal.Decimal `json:"withdrawable_cash"`
	PortfolioValue   decimal.Decimal `json:"portfolio_value"`
	DayTrader        bool            `json:"pattern_day_trader"`
	TradingBlocked   bool            `json:"trading_blocked"`
	TransfersBlocked bool            `json:"transfers_blocked"`
	AccountBlocked   bool            `json:"account_blocked"`
}

// Order is an order as reported by the brokerage API.
type Order struct {
	ID          OrderID          `json:"id"`
	Symbol      string           `json:"symbol"`
	Side        Side             `json:"side"`
	Type        Type             `json:"type"`
	Quantity    decimal.Decimal  `json:"qty"`
	TimeInForce TimeInForce      `json:"time_in_force"`
	LimitPrice  *decimal.Decimal `json:"limit_price"`
	StopPrice   *decimal.Decimal `json:"stop_price"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

// OrderRequest is the payload for submitting a new order.
type OrderRequest struct {
	Symbol      string           `json:"symbol"`
	Quantity    uint64           `json:"qty"`
	Side        Side             `json:"side"`
	Type        Type             `json:"type"`
	TimeInForce TimeInForce      `json:"time_in_force"`
	LimitPrice  *decimal.Decimal `json:"limit_price,omitempty"`
	StopPrice   *decimal.Decimal `json:"stop_price,omitempty"`
}
