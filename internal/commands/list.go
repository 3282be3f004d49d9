package commands

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/tradebot/gotrade/pkg/broker"
)

// listLimit is the page size used when listing open orders.
const listLimit = 500

// ListOrders fetches the account and all open orders concurrently and
// prints the orders as a column-aligned table, sorted by symbol. Widths are
// measured over the full result set before any row is emitted, so a failure
// of either fetch produces no partial output.
func (r *Runner) ListOrders(ctx context.Context) error {
	var (
		account *broker.Account
		orders  []broker.Order
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		account, err = r.client.GetAccount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = r.client.ListOrders(gctx, listLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Symbol < orders[j].Symbol
	})

	qtyWidth := maxWidth(orders, func(o *broker.Order) int {
		return len(formatQuantity(o.Quantity))
	})
	symWidth := maxWidth(orders, func(o *broker.Order) int {
		return len(o.Symbol)
	})

	for i := range orders {
		order := &orders[i]
		fmt.Fprintf(r.out, "%s %4s %*s %-*s %s\n",
			order.ID,
			string(order.Side),
			qtyWidth, formatQuantity(order.Quantity),
			symWidth, order.Symbol,
			priceDescription(order, account.Currency),
		)
	}
	return nil
}

// maxWidth is the maximum of f over all orders, or 0 for an empty list.
func maxWidth(orders []broker.Order, f func(*broker.Order) int) int {
	width := 0
	for i := range orders {
		if w := f(&orders[i]); w > width {
			width = w
		}
	}
	return width
}

// formatQuantity renders a quantity with zero fractional digits.
func formatQuantity(quantity decimal.Decimal) string {
	return quantity.StringFixed(0)
}

// priceDescription renders the prices bounding an order's execution,
// annotated with the account currency.
func priceDescription(order *broker.Order, currency string) string {
	limit, stop := order.LimitPrice, order.StopPrice
	switch {
	case limit != nil && stop != nil:
		assertOrderType(order, broker.TypeStopLimit)
		return fmt.Sprintf("stop @ %s %s, limit @ %s %s", stop, currency, limit, currency)
	case limit != nil:
		assertOrderType(order, broker.TypeLimit)
		return fmt.Sprintf("limit @ %s %s", limit, currency)
	case stop != nil:
		assertOrderType(order, broker.TypeStop)
		return fmt.Sprintf("stop @ %s %s", stop, currency)
	default:
		assertOrderType(order, broker.TypeMarket)
		return ""
	}
}

// assertOrderType guards the API contract that the populated price fields
// match the declared order type.
func assertOrderType(order *broker.Order, want broker.Type) {
	if order.Type != want {
		panic(fmt.Sprintf("order %s reports type %s but carries the prices of a %s order",
			order.ID, order.Type, want))
	}
}
