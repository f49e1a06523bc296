package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	KitchenSvcURL string
	RateSvcURL    string
}

type Gateway struct {
	config   Config
	client   HTTPClient
	realtime *httputil.ReverseProxy
	log      logrus.FieldLogger
}

func NewGateway(config Config, client HTTPClient, log logrus.FieldLogger) *Gateway {
	g := &Gateway{
		config: config,
		client: client,
		log:    log,
	}
	if target, err := url.Parse(config.KitchenSvcURL); err == nil && target.Host != "" {
		g.realtime = httputil.NewSingleHostReverseProxy(target)
	}
	return g
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	log := g.log.WithFields(logrus.Fields{"method": r.Method, "path": r.URL.Path, "target": targetURL})
	log.Debug("proxying request")

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		log.WithError(err).Error("failed to create request")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		log.WithError(err).Error("failed to proxy")
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		log.WithError(err).Warn("failed to copy response")
	}
}

// Realtime hands websocket upgrades to kitchen-svc over a reverse proxy,
// which keeps the hijacked connection open in both directions.
func (g *Gateway) Realtime(w http.ResponseWriter, r *http.Request) {
	if g.realtime == nil {
		http.Error(w, "realtime backend not configured", http.StatusBadGateway)
		return
	}
	g.realtime.ServeHTTP(w, r)
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/api/realtime/") {
		g.Realtime(w, r)
		return
	}

	if strings.HasPrefix(path, "/api/kitchens/") && strings.Contains(path, "/reviews") {
		g.ProxyRequest(w, r, g.config.RateSvcURL)
		return
	}

	if strings.HasPrefix(path, "/api/auth/") ||
		strings.HasPrefix(path, "/api/orders") ||
		path == "/api/kitchens" || strings.HasPrefix(path, "/api/kitchens/") ||
		strings.HasPrefix(path, "/uploads/") {
		g.ProxyRequest(w, r, g.config.KitchenSvcURL)
		return
	}

	g.log.WithField("path", path).Warn("unmatched route")
	http.Error(w, "API route not found", http.StatusNotFound)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
