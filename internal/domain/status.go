package domain

// List of possible courier availabilities
const (
	AvailabilityAvailable Availability = "available"
	AvailabilityBusy      Availability = "busy"
	AvailabilityOffline   Availability = "offline"
)

// List of possible account statuses
const (
	AccountActive   AccountStatus = "active"
	AccountInactive AccountStatus = "inactive"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

// Order lifecycle: pending → confirmed → preparing → out-for-delivery →
// delivered, with cancelled reachable from any pre-delivered state.
const (
	OrderPending        OrderStatus = "pending"
	OrderConfirmed      OrderStatus = "confirmed"
	OrderPreparing      OrderStatus = "preparing"
	OrderOutForDelivery OrderStatus = "out-for-delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

var allowedAvailabilities = [...]Availability{
	AvailabilityAvailable, AvailabilityBusy, AvailabilityOffline,
}

var allowedAccountStatuses = [...]AccountStatus{
	AccountActive, AccountInactive,
}

var allowedOrderStatuses = [...]OrderStatus{
	OrderPending, OrderConfirmed, OrderPreparing,
	OrderOutForDelivery, OrderDelivered, OrderCancelled,
}

// Valid checks if the Availability is valid
func (a Availability) Valid() bool {
	for _, v := range allowedAvailabilities {
		if a == v {
			return true
		}
	}
	return false
}

// Valid checks if the AccountStatus is valid
func (s AccountStatus) Valid() bool {
	for _, v := range allowedAccountStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the OrderStatus is valid
func (s OrderStatus) Valid() bool {
	for _, v := range allowedOrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the status allows no further transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}
