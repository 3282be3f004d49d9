// Package commands implements the command core of the trading client:
// building order requests from user input, fetching data from the brokerage
// API, and rendering reports.
package commands

import (
	"io"

	"github.com/tradebot/gotrade/pkg/broker"
)

// Runner dispatches a single parsed command against the brokerage API and
// writes the resulting report to out.
type Runner struct {
	client broker.Client
	out    io.Writer
}

// NewRunner creates a runner that talks to the given client.
func NewRunner(client broker.Client, out io.Writer) *Runner {
	return &Runner{client: client, out: out}
}
