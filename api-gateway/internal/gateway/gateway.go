package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"savr/config"
	"savr/monitoring"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	OrderSvcURL     string
	MenuSvcURL      string
	AnalyticsSvcURL string
	AuthSvcURL      string
	NotifySvcURL    string
}

func (c Config) Validate() error {
	targets := map[string]string{
		"ORDER_SVC_URL":     c.OrderSvcURL,
		"MENU_SVC_URL":      c.MenuSvcURL,
		"ANALYTICS_SVC_URL": c.AnalyticsSvcURL,
		"AUTH_SVC_URL":      c.AuthSvcURL,
		"NOTIFY_SVC_URL":    c.NotifySvcURL,
	}
	for key, raw := range targets {
		if raw == "" {
			return fmt.Errorf("%w: %s is required", config.ErrInvalidConfig, key)
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: %s is not an absolute URL: %q", config.ErrInvalidConfig, key, raw)
		}
	}
	return nil
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.SugaredLogger
}

func NewGateway(cfg Config, client HTTPClient, logger *zap.SugaredLogger) *Gateway {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Gateway{config: cfg, client: client, logger: logger}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "healthy",
		"service":   "api-gateway",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Target returns the upstream base URL serving path, or "" when no
// service owns it.
func (g *Gateway) Target(path string) string {
	switch {
	case hasPrefix(path, "/api/session"):
		return g.config.OrderSvcURL
	case hasPrefix(path, "/api/panel/metrics"), hasPrefix(path, "/api/panel/dashboard"):
		return g.config.AnalyticsSvcURL
	case hasPrefix(path, "/api/restaurants"), hasPrefix(path, "/api/panel/profile"), hasPrefix(path, "/api/panel/menu"):
		return g.config.MenuSvcURL
	case hasPrefix(path, "/api/auth"), hasPrefix(path, "/api/users"):
		return g.config.AuthSvcURL
	case hasPrefix(path, "/api/notifications"):
		return g.config.NotifySvcURL
	}
	return ""
}

// hasPrefix matches whole path segments, so /api/sessions does not match
// /api/session.
func hasPrefix(path, prefix string) bool {
	if !strings.HasPrefix(path, prefix) {
		return false
	}
	rest := path[len(prefix):]
	return rest == "" || rest[0] == '/'
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	upstream := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		upstream += "?" + r.URL.RawQuery
	}
	g.logger.Debugw("proxying request", "method", r.Method, "path", r.URL.Path, "upstream", upstream)

	req, err := http.NewRequestWithContext(r.Context(), r.Method, upstream, r.Body)
	if err != nil {
		g.logger.Errorw("failed to build upstream request", "upstream", upstream, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	req.Header = r.Header.Clone()

	resp, err := g.client.Do(req)
	if err != nil {
		monitoring.RecordOperation("api-gateway", "proxy", false)
		status := http.StatusBadGateway
		if r.Context().Err() != nil {
			status = http.StatusGatewayTimeout
		}
		g.logger.Errorw("upstream request failed", "upstream", targetURL, "error", err)
		http.Error(w, err.Error(), status)
		return
	}
	defer resp.Body.Close()
	monitoring.RecordOperation("api-gateway", "proxy", true)

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warnw("failed to copy upstream response", "upstream", targetURL, "error", err)
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target := g.Target(r.URL.Path)
	if target == "" {
		g.logger.Infow("unmatched api route", "method", r.Method, "path", r.URL.Path)
		http.Error(w, "API route not found", http.StatusNotFound)
		return
	}
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() *mux.Router {
	r := mux.NewRouter()
	r.Use(monitoring.Middleware("api-gateway"))
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.Handle("/metrics", monitoring.Handler()).Methods("GET")
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
	return r
}
