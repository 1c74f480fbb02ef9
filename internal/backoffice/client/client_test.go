package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := New(Config{BaseURL: server.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return c, server
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": status < 400,
		"code":    status,
		"data":    data,
	})
}

func TestClient_Login_InstallsToken(t *testing.T) {
	var sawAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "bilal@bureau.example", req["email"])

		writeEnvelope(w, http.StatusOK, map[string]any{
			"access_token":  "access-1",
			"refresh_token": "refresh-1",
			"employee": map[string]string{
				"user_id": "emp-1", "full_name": "Bilal Ahmed", "role": "employee",
			},
		})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]any{"results": []any{}})
	})

	c, _ := newTestClient(t, mux)

	session, err := c.Login(context.Background(), "bilal@bureau.example", "secret")
	require.NoError(t, err)
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "emp-1", session.Employee.UserID)

	_, err = c.ListCustomers(context.Background(), "", "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-1", sawAuth)
}

func TestClient_ListCustomers_DecodesEnvelope(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "no-action", r.URL.Query().Get("filter"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"results": []map[string]any{
				{
					"user_id":   "cust-1",
					"full_name": "Ayesha Khan",
					"fields":    map[string]any{"payment_status": 1},
					"status":    map[string]any{"no_action": true},
				},
			},
		})
	})

	c, _ := newTestClient(t, mux)

	records, err := c.ListCustomers(context.Background(), "no-action", "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Ayesha Khan", records[0].FullName)
	assert.True(t, records[0].Status.NoAction)
}

func TestClient_UpdateTrack_JSONWhenNoFiles(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /customers/cust-1", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "application/json"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(2), body["payment_status"])
		assert.Equal(t, "", body["payment_receipt"])

		writeEnvelope(w, http.StatusOK, map[string]any{"user_id": "cust-1"})
	})

	c, _ := newTestClient(t, mux)

	record, err := c.UpdateTrack(context.Background(), "cust-1",
		map[string]any{"payment_status": 2},
		map[string]Attachment{"payment_receipt": {Remove: true}},
	)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", record.UserID)
}

func TestClient_UpdateTrack_MultipartWhenFilePresent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /customers/cust-1", func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "1", r.FormValue("payment_status"))

		file, header, err := r.FormFile("payment_receipt")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "receipt.pdf", header.Filename)
		assert.Equal(t, "%PDF-1.4", string(content))

		writeEnvelope(w, http.StatusOK, map[string]any{"user_id": "cust-1"})
	})

	c, _ := newTestClient(t, mux)

	_, err := c.UpdateTrack(context.Background(), "cust-1",
		map[string]any{"payment_status": 1},
		map[string]Attachment{
			"payment_receipt": {
				Filename: "receipt.pdf",
				Content:  strings.NewReader("%PDF-1.4"),
			},
		},
	)
	require.NoError(t, err)
}

func TestClient_UpdateTrack_FieldErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /customers/cust-1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"success": false,
			"error": {
				"code": "VALIDATION_FAILED",
				"message": "Validation failed",
				"fields": {"payment_status": ["This field is required."]}
			}
		}`))
	})

	c, _ := newTestClient(t, mux)

	_, err := c.UpdateTrack(context.Background(), "cust-1",
		map[string]any{"payment_status": ""}, nil)
	require.Error(t, err)

	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, []string{"This field is required."}, fields["payment_status"])
}

func TestClient_FailureTaxonomy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers/gone", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "customer not found"}`))
	})
	mux.HandleFunc("GET /customers/secret", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("GET /customers/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	_, err := c.GetCustomer(ctx, "gone")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "customer not found", notFound.Message)

	_, err = c.GetCustomer(ctx, "secret")
	var auth *AuthError
	require.ErrorAs(t, err, &auth)

	_, err = c.GetCustomer(ctx, "broken")
	var server *ServerError
	require.ErrorAs(t, err, &server)
	assert.Equal(t, http.StatusInternalServerError, server.Status)
	assert.Equal(t, "boom", server.Message)
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close()

	c := New(Config{BaseURL: server.URL}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.ListCustomers(context.Background(), "", "")
	var network *NetworkError
	require.ErrorAs(t, err, &network)
}

func TestClient_ListLookupOptions_TolerantShapes(t *testing.T) {
	bodies := map[string]string{
		"bare":    `[{"id": 1, "name": "Paid"}]`,
		"results": `{"results": [{"id": 1, "name": "Paid"}]}`,
		"wrapped": `{"success": true, "data": {"results": [{"id": 1, "name": "Paid"}]}}`,
		"garbage": `{"whatever": 42}`,
	}

	mux := http.NewServeMux()
	for category, body := range bodies {
		mux.HandleFunc("GET /lookups/"+category, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}

	c, _ := newTestClient(t, mux)
	ctx := context.Background()

	for _, category := range []string{"bare", "results", "wrapped"} {
		options, err := c.ListLookupOptions(ctx, category)
		require.NoError(t, err, category)
		require.Len(t, options, 1, category)
		assert.Equal(t, "Paid", options[0]["name"], category)
	}

	options, err := c.ListLookupOptions(ctx, "garbage")
	require.NoError(t, err)
	assert.Empty(t, options)
}

func TestClient_AssignCustomer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /assign/customer-to-employee", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cust-1", body["customer_user_id"])
		assert.Equal(t, "emp-2", body["employee_user_id"])
		writeEnvelope(w, http.StatusOK, nil)
	})

	c, _ := newTestClient(t, mux)

	require.NoError(t, c.AssignCustomer(context.Background(), "cust-1", "emp-2"))
}
