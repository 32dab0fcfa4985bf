package domain

// FulfillmentStatus - статус исполнения позиции заказа на стороне поставщика.
type FulfillmentStatus string

const (
	StatusPending    FulfillmentStatus = "pending"
	StatusConfirmed  FulfillmentStatus = "confirmed"
	StatusProcessing FulfillmentStatus = "processing"
	StatusShipped    FulfillmentStatus = "shipped"
	StatusDelivered  FulfillmentStatus = "delivered"
	StatusCancelled  FulfillmentStatus = "cancelled"
	StatusReturned   FulfillmentStatus = "returned"
)

// FulfillmentUpdate - тело PUT /supplier/orders/{id}/fulfillment.
type FulfillmentUpdate struct {
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status"`
}
