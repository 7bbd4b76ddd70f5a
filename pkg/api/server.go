package api

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spooltrack/spooltrack/pkg/httputil"
	"github.com/spooltrack/spooltrack/pkg/observability"
	"github.com/spooltrack/spooltrack/pkg/rbac"
	"github.com/spooltrack/spooltrack/pkg/session"
	"github.com/spooltrack/spooltrack/pkg/tracking"
)

// resourceRoutes fixes the URL base path for each resource type
var resourceRoutes = []struct {
	resource rbac.Resource
	basePath string
}{
	{rbac.ResourceProject, "/projects"},
	{rbac.ResourceWorkOrder, "/work-orders"},
	{rbac.ResourcePersonnel, "/personnel"},
	{rbac.ResourceShipment, "/shipments"},
	{rbac.ResourceSpool, "/spools"},
	{rbac.ResourceInventoryItem, "/inventory"},
}

// Options configures optional server collaborators
type Options struct {
	// Logger defaults to an info-level stdout logger
	Logger *observability.Logger
	// Metrics registry; nil disables the /metrics endpoint
	Registry *prometheus.Registry
	// Health checker; nil disables /healthz and /readyz
	Health *observability.HealthChecker
	// CORSOrigins defaults to none (no CORS headers)
	CORSOrigins []string
}

// Server is the SpoolTrack HTTP API
type Server struct {
	router   *mux.Router
	handler  http.Handler
	gate     *rbac.Gate
	services map[rbac.Resource]tracking.Service
	logger   *observability.Logger
}

// NewServer builds the API server: one CRUD handler set per resource, all
// behind the session middleware and the shared middleware chain.
func NewServer(db *sql.DB, sessions session.Store, opts Options) (*Server, error) {
	logger := opts.Logger
	if logger == nil {
		logger = observability.NewLogger(observability.InfoLevel, nil)
	}

	var metrics *observability.Metrics
	if opts.Registry != nil {
		metrics = observability.NewMetrics(opts.Registry)
	}

	s := &Server{
		router: mux.NewRouter(),
		gate:   rbac.NewGate(rbac.DefaultTable()),
		logger: logger,
		services: map[rbac.Resource]tracking.Service{
			rbac.ResourceProject:       instrument(rbac.ResourceProject, tracking.NewProjectService(db), metrics),
			rbac.ResourceWorkOrder:     instrument(rbac.ResourceWorkOrder, tracking.NewWorkOrderService(db), metrics),
			rbac.ResourcePersonnel:     instrument(rbac.ResourcePersonnel, tracking.NewPersonnelService(db), metrics),
			rbac.ResourceShipment:      instrument(rbac.ResourceShipment, tracking.NewShipmentService(db), metrics),
			rbac.ResourceSpool:         instrument(rbac.ResourceSpool, tracking.NewSpoolService(db), metrics),
			rbac.ResourceInventoryItem: instrument(rbac.ResourceInventoryItem, tracking.NewInventoryService(db), metrics),
		},
	}

	for _, route := range resourceRoutes {
		handler, err := newResourceHandler(route.resource, s.services[route.resource], s.gate)
		if err != nil {
			return nil, err
		}
		handler.Register(s.router, route.basePath)
	}

	if opts.Health != nil {
		s.router.HandleFunc("/healthz", opts.Health.Liveness).Methods("GET")
		s.router.HandleFunc("/readyz", opts.Health.Readiness).Methods("GET")
	}

	if metrics != nil {
		s.router.Handle("/metrics", metrics.Handler()).Methods("GET")
		// Attached as router middleware so the matched route template is
		// available for the path label.
		s.router.Use(metrics.Middleware(routeTemplate))
	}

	// Middleware chain, outermost first: request id, logging, panic
	// recovery, then session resolution. Handlers below see a caller (or
	// anonymous) and never a raw token.
	var handler http.Handler = s.router
	handler = session.NewMiddleware(sessions).Handler(handler)
	handler = httputil.RecoveryMiddleware(logger)(handler)
	if len(opts.CORSOrigins) > 0 {
		handler = httputil.CORSMiddleware(opts.CORSOrigins)(handler)
	}
	handler = httputil.LoggingMiddleware(logger)(handler)
	handler = httputil.RequestIDMiddleware(handler)
	s.handler = handler

	return s, nil
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// routeTemplate resolves the matched mux route template for metrics labels
func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return ""
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return ""
	}
	return tmpl
}
