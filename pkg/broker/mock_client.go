package broker

import (
	"context"
	"sync"
)

// MockClient is a canned-response Client for testing.
type MockClient struct {
	mu sync.RWMutex

	// Response data
	AccountResponse *Account
	OrderResponse   *Order
	OrdersResponse  []Order

	// Call tracking
	Calls            map[string]int
	LastOrderRequest *OrderRequest
	CanceledIDs      []OrderID
	LastListLimit    int

	// Error injection
	ErrorOnNext map[string]error
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a new mock client.
func NewMockClient() *MockClient {
	return &MockClient{
		Calls:       make(map[string]int),
		ErrorOnNext: make(map[string]error),
	}
}

func (m *MockClient) trackCall(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls[name]++
	if err, ok := m.ErrorOnNext[name]; ok {
		delete(m.ErrorOnNext, name)
		return err
	}
	return nil
}

func (m *MockClient) GetAccount(ctx context.Context) (*Account, error) {
	if err := m.trackCall("GetAccount"); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.AccountResponse, nil
}

func (m *MockClient) CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error) {
	if err := m.trackCall("CreateOrder"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastOrderRequest = req
	return m.OrderResponse, nil
}

func (m *MockClient) CancelOrder(ctx context.Context, id OrderID) error {
	if err := m.trackCall("CancelOrder"); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CanceledIDs = append(m.CanceledIDs, id)
	return nil
}

func (m *MockClient) ListOrders(ctx context.Context, limit int) ([]Order, error) {
	if err := m.trackCall("ListOrders"); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastListLimit = limit
	return m.OrdersResponse, nil
}
