package broker

// API endpoints.
const (
	EndpointAccount = "/v1/account"
	EndpointOrders  = "/v1/orders"
)
