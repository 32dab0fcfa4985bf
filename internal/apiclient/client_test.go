package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Gunvolt24/supplier_orders/internal/ports"
	"github.com/Gunvolt24/supplier_orders/pkg/ctxmeta"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestDo_SendsHeadersAndBody(t *testing.T) {
	var (
		gotMethod, gotPath, gotQuery string
		gotAuth, gotCT, gotRID       string
		gotBody                      map[string]any
	)
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotQuery = r.Method, r.URL.Path, r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotRID = r.Header.Get(ctxmeta.HeaderRequestID)
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id": 7, "fulfillment_status": "shipped"}`)
	})

	ctx := ctxmeta.WithRequestID(context.Background(), "rid-1")
	out, err := c.Do(ctx, "/supplier/orders/7/fulfillment?x=1", ports.RequestOptions{
		Method: http.MethodPut,
		Body:   map[string]string{"fulfillment_status": "shipped"},
		Token:  "tok",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"id": 7, "fulfillment_status": "shipped"}`, string(out))

	require.Equal(t, http.MethodPut, gotMethod)
	require.Equal(t, "/supplier/orders/7/fulfillment", gotPath)
	require.Equal(t, "x=1", gotQuery)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "application/json", gotCT)
	require.Equal(t, "rid-1", gotRID)
	require.Equal(t, "shipped", gotBody["fulfillment_status"])
}

func TestDo_DefaultsToGETWithoutAuth(t *testing.T) {
	var gotMethod, gotAuth, gotCT string
	c := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		_, _ = io.WriteString(w, `[]`)
	})

	out, err := c.Do(context.Background(), "/ping", ports.RequestOptions{})
	require.NoError(t, err)
	require.Equal(t, "[]", string(out))
	require.Equal(t, http.MethodGet, gotMethod)
	require.Empty(t, gotAuth)
	require.Empty(t, gotCT)
}

func TestDo_EmptyOrNonJSONBodyIsNil(t *testing.T) {
	for name, body := range map[string]string{"empty": "", "html": "<html>ok</html>", "null": "null"} {
		body := body
		t.Run(name, func(t *testing.T) {
			c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, body)
			})
			out, err := c.Do(context.Background(), "/x", ports.RequestOptions{})
			require.NoError(t, err)
			require.Nil(t, out)
		})
	}
}

func TestDo_ErrorMessagePrecedence(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{"string_detail", 404, `{"detail":"X","message":"ignored"}`, "X"},
		{"array_detail", 422, `{"detail":[{"msg":"bad","loc":["body","qty"]}]}`, "bad at body.qty"},
		{"array_detail_multi", 422, `{"detail":[{"msg":"a","loc":["body","items",0]},{"msg":"b"}]}`, "a at body.items.0; b"},
		{"array_detail_null_loc_segment", 422, `{"detail":[{"msg":"bad","loc":["body",null,"qty"]}]}`, "bad at body.qty"},
		{"array_detail_only_null_loc", 422, `{"detail":[{"msg":"bad","loc":[null]}]}`, "bad"},
		{"message", 400, `{"message":"Y"}`, "Y"},
		{"empty_object", 500, `{}`, "Request failed (500)"},
		{"non_json", 502, `Bad Gateway`, "Request failed (502)"},
		{"detail_wrong_type", 409, `{"detail":5}`, "Request failed (409)"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.Do(context.Background(), "/supplier/orders", ports.RequestOptions{Token: "t"})
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr), "want *apiclient.Error, got %T", err)
			require.Equal(t, tt.wantMsg, apiErr.Message)
			require.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestDo_ErrorCarriesParsedBody(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"message":"no","code":"E1"}`)
	})

	_, err := c.Do(context.Background(), "/x", ports.RequestOptions{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	data, ok := apiErr.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "E1", data["code"])
}

func TestDo_ErrorWithoutBodyHasNilData(t *testing.T) {
	c := newBackend(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := c.Do(context.Background(), "/x", ports.RequestOptions{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Nil(t, apiErr.Data)
	require.Equal(t, "Request failed (503)", apiErr.Error())
}

func TestDo_TransportErrorIsNotNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := New(url)
	_, err := c.Do(context.Background(), "/x", ports.RequestOptions{})
	require.Error(t, err)

	var apiErr *Error
	require.False(t, errors.As(err, &apiErr), "transport error must not be *apiclient.Error")
}

func TestDo_TimeoutOption(t *testing.T) {
	c := New("", WithTimeout(50*time.Millisecond))
	require.Equal(t, DefaultBaseURL, c.baseURL)
	require.Equal(t, 50*time.Millisecond, c.http.Timeout)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)

	slow := New(srv.URL, WithTimeout(50*time.Millisecond))
	_, err := slow.Do(context.Background(), "/slow", ports.RequestOptions{})
	require.Error(t, err)
}

func TestNew_TracingWrapsTransport(t *testing.T) {
	c := New("http://backend", WithTracing(true))
	require.NotNil(t, c.http.Transport)
	require.NotEqual(t, http.DefaultTransport, c.http.Transport)

	plain := New("http://backend")
	require.Nil(t, plain.http.Transport)
}
