package domain

// Product describes an item available for ordering.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// OrderItem is a single order line.
type OrderItem struct {
	Product     Product `json:"product"`
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"priceAtTime"`
	Subtotal    float64 `json:"subtotal"`
}

// Customer identifies the ordering customer.
type Customer struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DeliveryAddress is the destination of an order.
type DeliveryAddress struct {
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country,omitempty"`
	Landmark     string `json:"landmark,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

// ContactInfo holds delivery contact phone numbers.
type ContactInfo struct {
	Phone          string `json:"phone"`
	AlternatePhone string `json:"alternatePhone,omitempty"`
}

// Pricing is the money breakdown of an order.
type Pricing struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// PaymentInfo describes how the order is paid for.
type PaymentInfo struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

// DeliveryInfo carries courier-assignment details set by the server.
type DeliveryInfo struct {
	AssignedTo         string `json:"assignedTo,omitempty"`
	EstimatedTime      string `json:"estimatedTime,omitempty"`
	ActualDeliveryTime string `json:"actualDeliveryTime,omitempty"`
}

// Order represents a customer order as consumed by the courier client.
type Order struct {
	ID              string          `json:"_id"`
	OrderNumber     string          `json:"orderNumber"`
	Customer        Customer        `json:"customer"`
	Items           []OrderItem     `json:"items"`
	DeliveryAddress DeliveryAddress `json:"deliveryAddress"`
	ContactInfo     ContactInfo     `json:"contactInfo"`
	Pricing         Pricing         `json:"pricing"`
	Status          OrderStatus     `json:"status"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
	Delivery        *DeliveryInfo   `json:"delivery,omitempty"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
}
