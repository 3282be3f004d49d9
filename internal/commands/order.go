package commands

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tradebot/gotrade/pkg/broker"
)

// SubmitParams are the already-typed user inputs of an order submission.
type SubmitParams struct {
	Side       broker.Side
	Symbol     string
	Quantity   uint64
	LimitPrice *decimal.Decimal
	StopPrice  *decimal.Decimal
	Today      bool
}

// BuildOrderRequest derives a fully-specified order request from the user's
// inputs. The execution type follows from which prices are present:
//
//	limit + stop -> stop_limit
//	limit only   -> limit
//	stop only    -> stop
//	neither      -> market
//
// Quantity is passed through unchecked; the API rejects invalid values.
func BuildOrderRequest(params SubmitParams) *broker.OrderRequest {
	var orderType broker.Type
	switch {
	case params.LimitPrice != nil && params.StopPrice != nil:
		orderType = broker.TypeStopLimit
	case params.LimitPrice != nil:
		orderType = broker.TypeLimit
	case params.StopPrice != nil:
		orderType = broker.TypeStop
	default:
		orderType = broker.TypeMarket
	}

	timeInForce := broker.TimeInForceUntilCanceled
	if params.Today {
		timeInForce = broker.TimeInForceDay
	}

	return &broker.OrderRequest{
		Symbol:      params.Symbol,
		Quantity:    params.Quantity,
		Side:        params.Side,
		Type:        orderType,
		TimeInForce: timeInForce,
		LimitPrice:  params.LimitPrice,
		StopPrice:   params.StopPrice,
	}
}

// SubmitOrder submits a new order and prints the id it was assigned.
func (r *Runner) SubmitOrder(ctx context.Context, params SubmitParams) error {
	order, err := r.client.CreateOrder(ctx, BuildOrderRequest(params))
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, order.ID)
	return nil
}

// CancelOrder cancels the order with the given id. Nothing is printed on
// success.
func (r *Runner) CancelOrder(ctx context.Context, id broker.OrderID) error {
	return r.client.CancelOrder(ctx, id)
}
