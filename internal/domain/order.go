package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ID - идентификатор записи бэкенда. Бэкенд отдаёт его то числом, то строкой,
// поэтому принимаем оба варианта и храним текстом.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case isNull(data):
		*id = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
	case isNumber(data):
		*id = ID(data)
	default:
		// объект или bool в id не читаем; запись уходит дальше как есть
		*id = ""
	}
	return nil
}

// MarshalJSON пишет идентификатор строкой. Записи, пришедшие от бэкенда,
// сериализуются из исходного JSON, и там тип id сохраняется.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// Number - числовое поле записи (цена, количество). Бэкенд может прислать
// число или строку ("19.99"); значение хранится текстом без разбора.
type Number string

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case isNull(data):
		*n = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = Number(s)
	case isNumber(data):
		*n = Number(data)
	default:
		*n = ""
	}
	return nil
}

// MarshalJSON пишет корректное JSON-число как есть, остальное строкой.
func (n Number) MarshalJSON() ([]byte, error) {
	if n == "" {
		return []byte("null"), nil
	}
	if isNumber([]byte(n)) {
		return []byte(n), nil
	}
	return json.Marshal(string(n))
}

func (n Number) String() string { return string(n) }

// Order - строка заказа поставщика в списке (позиция заказа).
// Клиент читает только перечисленные поля и не валидирует запись:
// поле неожиданного типа остаётся нулевым, а при сериализации
// отдаётся исходный JSON бэкенда (с учётом смены статуса).
type Order struct {
	ID                ID                `json:"id"`
	OrderID           ID                `json:"order_id,omitempty"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status"`
	ProductName       string            `json:"product_name,omitempty"`
	SKU               string            `json:"sku,omitempty"`
	Quantity          Number            `json:"quantity"`
	TotalPrice        Number            `json:"total_price"`
	CreatedAt         string            `json:"created_at,omitempty"`

	raw json.RawMessage // исходная запись бэкенда
}

// orderFields - Order без собственных методов сериализации.
type orderFields Order

func (o *Order) UnmarshalJSON(data []byte) error {
	if isNull(bytes.TrimSpace(data)) {
		*o = Order{}
		return nil
	}
	var f orderFields
	if err := decodeLenient(data, &f); err != nil {
		return err
	}
	*o = Order(f)
	o.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	if out, ok := o.passThrough(); ok {
		return out, nil
	}
	return json.Marshal(orderFields(o))
}

// Raw - исходный JSON записи; nil, если запись собрана в коде.
func (o Order) Raw() json.RawMessage { return o.raw }

// passThrough возвращает исходную запись с текущим статусом поверх.
func (o Order) passThrough() ([]byte, bool) {
	if len(o.raw) == 0 {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(o.raw, &fields); err != nil || fields == nil {
		return nil, false
	}
	if o.FulfillmentStatus != "" {
		status, err := json.Marshal(o.FulfillmentStatus)
		if err != nil {
			return nil, false
		}
		fields["fulfillment_status"] = status
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, false
	}
	return out, true
}

// Address - адрес доставки/оплаты.
type Address struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

// OrderInfo - вложенный объект заказа в детальной карточке.
type OrderInfo struct {
	ID              ID       `json:"id,omitempty"`
	OrderNumber     string   `json:"order_number,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
	BillingAddress  *Address `json:"billing_address,omitempty"`
	CustomerNotes   string   `json:"customer_notes,omitempty"`
}

// OrderItemDetail - детальная карточка позиции заказа.
type OrderItemDetail struct {
	Order
	UnitPrice Number     `json:"unit_price,omitempty"`
	UpdatedAt string     `json:"updated_at,omitempty"`
	OrderInfo *OrderInfo `json:"order,omitempty"`
}

type detailExtras struct {
	UnitPrice Number     `json:"unit_price,omitempty"`
	UpdatedAt string     `json:"updated_at,omitempty"`
	OrderInfo *OrderInfo `json:"order,omitempty"`
}

func (d *OrderItemDetail) UnmarshalJSON(data []byte) error {
	if err := d.Order.UnmarshalJSON(data); err != nil {
		return err
	}
	var extras detailExtras
	if !isNull(bytes.TrimSpace(data)) {
		if err := decodeLenient(data, &extras); err != nil {
			return err
		}
	}
	d.UnitPrice, d.UpdatedAt, d.OrderInfo = extras.UnitPrice, extras.UpdatedAt, extras.OrderInfo
	return nil
}

func (d OrderItemDetail) MarshalJSON() ([]byte, error) {
	if out, ok := d.passThrough(); ok {
		return out, nil
	}
	return json.Marshal(struct {
		orderFields
		detailExtras
	}{
		orderFields(d.Order),
		detailExtras{UnitPrice: d.UnitPrice, UpdatedAt: d.UpdatedAt, OrderInfo: d.OrderInfo},
	})
}

// OrderListPage - постраничный конверт списка заказов.
type OrderListPage struct {
	Items      []Order `json:"items"`
	Total      int     `json:"total"`
	TotalPages int     `json:"total_pages"`
}

// Shipment и Return приходят как непрозрачные записи.
type (
	Shipment = map[string]any
	Return   = map[string]any
)

// ShipmentsPage - страница отгрузок.
type ShipmentsPage struct {
	Items      []Shipment `json:"items"`
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
}

// ReturnsPage - страница возвратов.
type ReturnsPage struct {
	Items      []Return `json:"items"`
	Total      int      `json:"total"`
	TotalPages int      `json:"total_pages"`
}

// AnalyticsSummary - сводка по заказам за период. Форма ответа не
// фиксирована, клиент передаёт её как есть.
type AnalyticsSummary map[string]any

// decodeLenient разбирает известные поля; несовпадение типа поля
// не ошибка, поле просто остаётся нулевым.
func decodeLenient(data []byte, v any) error {
	err := json.Unmarshal(data, v)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return nil
	}
	return err
}

func isNull(data []byte) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

// isNumber - data является корректным JSON-числом ("007" и "+5" - нет).
func isNumber(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	if c := data[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return json.Valid(data)
}
