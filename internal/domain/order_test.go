package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/Gunvolt24/supplier_orders/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestOrder_RoundTripKeepsBackendRecord(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"leading zero string id", `{"id":"007","fulfillment_status":"pending","total_price":"19.99"}`},
		{"signed string id", `{"id":"+5","fulfillment_status":"pending"}`},
		{"numeric string id stays string", `{"id":"42","fulfillment_status":"shipped"}`},
		{"numeric id stays number", `{"id":42,"fulfillment_status":"shipped","quantity":3,"total_price":10.5}`},
		{"unknown fields kept", `{"id":1,"fulfillment_status":"pending","warehouse":{"code":"MSK-1"},"tags":["a","b"]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var o domain.Order
			require.NoError(t, json.Unmarshal([]byte(tc.in), &o))

			out, err := json.Marshal(o)
			require.NoError(t, err)
			require.JSONEq(t, tc.in, string(out))
		})
	}
}

func TestOrder_LenientFields(t *testing.T) {
	var o domain.Order
	in := `{"id":"007","fulfillment_status":"pending","total_price":"19.99","quantity":"2","product_name":12}`
	require.NoError(t, json.Unmarshal([]byte(in), &o))

	require.Equal(t, domain.ID("007"), o.ID)
	require.Equal(t, domain.Number("19.99"), o.TotalPrice)
	require.Equal(t, domain.Number("2"), o.Quantity)
	require.Empty(t, o.ProductName, "field of unexpected type stays zero")
	require.JSONEq(t, in, string(o.Raw()))
}

func TestOrder_MarshalOverlaysStatus(t *testing.T) {
	var o domain.Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":"007","fulfillment_status":"pending","note":"x"}`), &o))

	o.FulfillmentStatus = domain.StatusShipped
	out, err := json.Marshal(o)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"007","fulfillment_status":"shipped","note":"x"}`, string(out))
}

func TestOrder_BuiltInCodeMarshalsValidJSON(t *testing.T) {
	out, err := json.Marshal(domain.Order{ID: "007", FulfillmentStatus: domain.StatusPending, TotalPrice: "19.99"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.Equal(t, "007", got["id"])
	require.Equal(t, 19.99, got["total_price"])
}

func TestOrderListPage_ItemsPassThrough(t *testing.T) {
	in := `{"items":[{"id":"007","fulfillment_status":"pending","total_price":"19.99","extra":true},null],"total":2,"total_pages":1}`
	var page domain.OrderListPage
	require.NoError(t, json.Unmarshal([]byte(in), &page))
	require.Len(t, page.Items, 2)
	require.Equal(t, domain.ID("007"), page.Items[0].ID)

	out, err := json.Marshal(page)
	require.NoError(t, err)

	var got struct {
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(out, &got))
	require.JSONEq(t, `{"id":"007","fulfillment_status":"pending","total_price":"19.99","extra":true}`, string(got.Items[0]))
}

func TestOrderItemDetail_RoundTrip(t *testing.T) {
	in := `{
		"id": 9,
		"fulfillment_status": "processing",
		"unit_price": "5.00",
		"order": {"id": 100, "shipping_address": {"city": "Kazan", "region": "TA"}, "customer_notes": "call first"},
		"carrier": "cdek"
	}`
	var d domain.OrderItemDetail
	require.NoError(t, json.Unmarshal([]byte(in), &d))

	require.Equal(t, domain.ID("9"), d.ID)
	require.Equal(t, domain.Number("5.00"), d.UnitPrice)
	require.NotNil(t, d.OrderInfo)
	require.Equal(t, "Kazan", d.OrderInfo.ShippingAddress.City)
	require.Equal(t, "call first", d.OrderInfo.CustomerNotes)

	out, err := json.Marshal(&d)
	require.NoError(t, err)
	require.JSONEq(t, in, string(out))
}

func TestOrderItemDetail_BuiltInCode(t *testing.T) {
	d := domain.OrderItemDetail{
		Order:     domain.Order{ID: "9", ProductName: "Lamp"},
		UnitPrice: "1.5",
		OrderInfo: &domain.OrderInfo{ShippingAddress: &domain.Address{City: "Kazan"}},
	}
	out, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	require.Equal(t, "9", got["id"])
	require.Equal(t, "Lamp", got["product_name"])
	require.Equal(t, 1.5, got["unit_price"])
	require.Equal(t, "Kazan", got["order"].(map[string]any)["shipping_address"].(map[string]any)["city"])
}
