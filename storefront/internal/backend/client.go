package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"tiffin-finder/storefront/internal/model"

	"github.com/sirupsen/logrus"
)

const listenerBuffer = 16

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

// Client talks to the services through the gateway. It holds the current
// session and fans auth events out to subscribers.
type Client struct {
	baseURL string
	http    HTTPClient
	log     logrus.FieldLogger

	mu      sync.RWMutex
	session *model.Session

	listenersMu sync.Mutex
	listeners   map[int]chan model.AuthEvent
	nextID      int
}

func NewClient(baseURL string, httpClient HTTPClient, log logrus.FieldLogger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      httpClient,
		log:       log,
		listeners: make(map[int]chan model.AuthEvent),
	}
}

// SubscribeAuthEvents returns a channel of auth events and a function that
// closes it.
func (c *Client) SubscribeAuthEvents() (<-chan model.AuthEvent, func()) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan model.AuthEvent, listenerBuffer)
	c.listeners[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.listenersMu.Lock()
			defer c.listenersMu.Unlock()
			delete(c.listeners, id)
			close(ch)
		})
	}
}

func (c *Client) emit(event model.AuthEvent) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()

	for _, ch := range c.listeners {
		select {
		case ch <- event:
		default:
			c.log.WithField("event", event.Type).Warn("auth listener is full, dropping event")
		}
	}
}

// RestoreSession makes a previously persisted session current.
func (c *Client) RestoreSession(session *model.Session) {
	c.setSession(session)
}

func (c *Client) CurrentSession() (model.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return model.Session{}, false
	}
	return *c.session, true
}

func (c *Client) setSession(session *model.Session) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if session == nil {
		c.session = nil
		return
	}
	copied := *session
	c.session = &copied
}

func (c *Client) accessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return ""
	}
	return c.session.AccessToken
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.accessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s: %w", method, path, err)
	}
	return nil
}
