package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"tiffin-finder/storefront/internal/model"

	"github.com/gorilla/websocket"
)

// Subscription is a live realtime feed. It ends when Close is called, the
// context it was opened with is cancelled, or the server goes away.
type Subscription struct {
	conn *websocket.Conn
	done chan struct{}
	once sync.Once
}

func (s *Subscription) Close() error {
	var err error
	s.once.Do(func() {
		err = s.conn.Close()
	})
	<-s.done
	return err
}

// Done is closed once the feed has stopped.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// SubscribeOrder delivers changes to one order.
func (c *Client) SubscribeOrder(ctx context.Context, orderID string, onChange func(model.ChangeEvent)) (*Subscription, error) {
	return c.subscribeChanges(ctx, "/api/realtime/orders/"+url.PathEscape(orderID), onChange)
}

// SubscribeKitchenOrders delivers orders placed with a kitchen.
func (c *Client) SubscribeKitchenOrders(ctx context.Context, kitchenID string, onChange func(model.ChangeEvent)) (*Subscription, error) {
	return c.subscribeChanges(ctx, "/api/realtime/kitchens/"+url.PathEscape(kitchenID), onChange)
}

func (c *Client) subscribeChanges(ctx context.Context, path string, onChange func(model.ChangeEvent)) (*Subscription, error) {
	return c.subscribe(ctx, path, func(payload []byte) {
		var event model.ChangeEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			c.log.WithError(err).WithField("path", path).Warn("skipping malformed change event")
			return
		}
		onChange(event)
	})
}

// WatchAuth forwards auth events pushed by the server, such as a sign-out
// from another device, to local subscribers.
func (c *Client) WatchAuth(ctx context.Context) (*Subscription, error) {
	return c.subscribe(ctx, "/api/realtime/auth", func(payload []byte) {
		var event model.AuthEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			c.log.WithError(err).Warn("skipping malformed auth event")
			return
		}
		switch event.Type {
		case model.EventSignedOut:
			c.setSession(nil)
		case model.EventSignedIn, model.EventTokenRefreshed:
			if event.Session != nil {
				c.setSession(event.Session)
			}
		}
		c.emit(event)
	})
}

func (c *Client) subscribe(ctx context.Context, path string, handle func([]byte)) (*Subscription, error) {
	conn, err := c.dial(ctx, path)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{conn: conn, done: make(chan struct{})}
	go func() {
		defer close(sub.done)
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			handle(payload)
		}
	}()
	go func() {
		select {
		case <-ctx.Done():
			sub.Close()
		case <-sub.done:
		}
	}()
	return sub, nil
}

func (c *Client) dial(ctx context.Context, path string) (*websocket.Conn, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}

	header := http.Header{}
	if token := c.accessToken(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			return nil, &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
		}
		return nil, err
	}
	return conn, nil
}
