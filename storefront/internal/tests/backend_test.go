package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tiffin-finder/storefront/internal/backend"
	"tiffin-finder/storefront/internal/model"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, mux *http.ServeMux) *backend.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return backend.NewClient(server.URL, server.Client(), quietLogger())
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func nextEvent(t *testing.T, events <-chan model.AuthEvent) model.AuthEvent {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		t.Fatal("no auth event received")
		return model.AuthEvent{}
	}
}

func TestClient_SignIn(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/signin", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Password != "secret" {
			http.Error(w, "invalid login credentials", http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, model.AuthResult{
			User:    &model.Principal{ID: "u1", Email: body.Email},
			Session: &model.Session{AccessToken: "access", RefreshToken: "refresh"},
		})
	})
	client := newBackend(t, mux)
	events, unsubscribe := client.SubscribeAuthEvents()
	defer unsubscribe()

	t.Run("wrong password", func(t *testing.T) {
		_, err := client.SignIn(context.Background(), "a@example.com", "nope")
		var apiErr *backend.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
		assert.Equal(t, "invalid login credentials", apiErr.Error())
		_, ok := client.CurrentSession()
		assert.False(t, ok)
	})

	t.Run("success", func(t *testing.T) {
		result, err := client.SignIn(context.Background(), "a@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "u1", result.User.ID)

		session, ok := client.CurrentSession()
		require.True(t, ok)
		assert.Equal(t, "access", session.AccessToken)

		event := nextEvent(t, events)
		assert.Equal(t, model.EventSignedIn, event.Type)
		assert.Equal(t, "a@example.com", event.User.Email)
	})
}

func TestClient_AuthorizedRequests(t *testing.T) {
	var received model.NewOrder
	mux := http.NewServeMux()
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusCreated, model.Order{ID: "order-1", Status: "pending", TotalAmount: received.TotalAmount})
	})
	mux.HandleFunc("/api/auth/signout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	client := newBackend(t, mux)
	order := model.NewOrder{
		KitchenID:     "kitchen-1",
		TotalAmount:   240,
		PaymentMethod: "cod",
		Items:         []model.NewOrderItem{{MenuItemID: "a", Quantity: 2}},
	}

	_, err := client.CreateOrder(context.Background(), order)
	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	client.RestoreSession(&model.Session{AccessToken: "access"})
	created, err := client.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "order-1", created.ID)
	assert.Equal(t, order, received)

	events, unsubscribe := client.SubscribeAuthEvents()
	defer unsubscribe()
	require.NoError(t, client.SignOut(context.Background()))
	assert.Equal(t, model.EventSignedOut, nextEvent(t, events).Type)
	_, ok := client.CurrentSession()
	assert.False(t, ok)
}

func TestClient_SessionChecks(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, model.AuthResult{
			User:    &model.Principal{ID: "u1"},
			Session: &model.Session{AccessToken: "access"},
		})
	})
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusOK, model.AuthResult{
			Session: &model.Session{AccessToken: "fresh-" + body["refresh_token"], RefreshToken: "next"},
		})
	})
	client := newBackend(t, mux)

	result, err := client.GetSession(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, result)

	_, err = client.RefreshSession(context.Background())
	assert.ErrorIs(t, err, backend.ErrNoSession)

	client.RestoreSession(&model.Session{AccessToken: "access", RefreshToken: "keep"})
	result, err = client.GetSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "keep", result.Session.RefreshToken)

	events, unsubscribe := client.SubscribeAuthEvents()
	defer unsubscribe()
	_, err = client.RefreshSession(context.Background())
	require.NoError(t, err)
	event := nextEvent(t, events)
	assert.Equal(t, model.EventTokenRefreshed, event.Type)
	session, _ := client.CurrentSession()
	assert.Equal(t, "fresh-keep", session.AccessToken)
}

func TestClient_UnsubscribeClosesChannel(t *testing.T) {
	client := backend.NewClient("http://localhost:0", nil, quietLogger())
	events, unsubscribe := client.SubscribeAuthEvents()
	unsubscribe()
	unsubscribe()

	_, open := <-events
	assert.False(t, open)
	require.NoError(t, client.SignOut(context.Background()))
}

func realtimeHandler(t *testing.T, send interface{}) http.HandlerFunc {
	upgrader := websocket.Upgrader{}
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access" {
			http.Error(w, "missing token", http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()
		if err := conn.WriteJSON(send); err != nil {
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

func TestClient_SubscribeOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("/api/realtime/orders/order-1", realtimeHandler(t, model.ChangeEvent{
		Type:   "UPDATE",
		Table:  "orders",
		Record: model.Order{ID: "order-1", Status: "preparing"},
	}))
	client := newBackend(t, mux)

	_, err := client.SubscribeOrder(context.Background(), "order-1", func(model.ChangeEvent) {})
	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	client.RestoreSession(&model.Session{AccessToken: "access"})
	changes := make(chan model.ChangeEvent, 1)
	sub, err := client.SubscribeOrder(context.Background(), "order-1", func(event model.ChangeEvent) {
		changes <- event
	})
	require.NoError(t, err)

	select {
	case event := <-changes:
		assert.Equal(t, "UPDATE", event.Type)
		assert.Equal(t, "preparing", event.Record.Status)
	case <-time.After(time.Second):
		t.Fatal("no change event received")
	}

	sub.Close()
	select {
	case <-sub.Done():
	default:
		t.Fatal("subscription still running after Close")
	}
}

func TestClient_WatchAuth(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("/api/realtime/auth", realtimeHandler(t, model.AuthEvent{Type: model.EventSignedOut}))
	client := newBackend(t, mux)
	client.RestoreSession(&model.Session{AccessToken: "access"})
	events, unsubscribe := client.SubscribeAuthEvents()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := client.WatchAuth(ctx)
	require.NoError(t, err)

	assert.Equal(t, model.EventSignedOut, nextEvent(t, events).Type)
	_, ok := client.CurrentSession()
	assert.False(t, ok)

	cancel()
	select {
	case <-sub.Done():
	case <-time.After(time.Second):
		t.Fatal("subscription did not stop with its context")
	}
}
