package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/spooltrack/spooltrack/pkg/httputil"
	"github.com/spooltrack/spooltrack/pkg/rbac"
	"github.com/spooltrack/spooltrack/pkg/tracking"
	"github.com/spooltrack/spooltrack/pkg/validation"
)

// resourceHandler serves the five CRUD endpoints for one resource type.
// Authorization is enforced by the gate middleware at registration time, so
// a handler method only runs for an allowed caller. Each method follows the
// same pipeline, terminal at the first failure: parse and validate the body
// (mutations only), delegate to the resource service, wrap the outcome in
// the envelope.
type resourceHandler struct {
	resource     rbac.Resource
	service      tracking.Service
	gate         *rbac.Gate
	createSchema validation.Schema
	updateSchema validation.Schema
	notFound     string
}

func newResourceHandler(resource rbac.Resource, service tracking.Service, gate *rbac.Gate) (*resourceHandler, error) {
	createSchema, ok := validation.CreateSchema(resource)
	if !ok {
		return nil, errors.New("no schema registered for resource " + string(resource))
	}
	updateSchema, _ := validation.UpdateSchema(resource)

	return &resourceHandler{
		resource:     resource,
		service:      service,
		gate:         gate,
		createSchema: createSchema,
		updateSchema: updateSchema,
		notFound:     tracking.NotFoundMessage(resource),
	}, nil
}

// Register wires the collection and item endpoints under the base path,
// each behind the gate middleware for its action.
func (h *resourceHandler) Register(r *mux.Router, basePath string) {
	guard := func(action rbac.Action, fn http.HandlerFunc) http.Handler {
		return h.gate.Require(h.resource, action)(fn)
	}

	r.Handle(basePath, guard(rbac.ActionRead, h.list)).Methods("GET")
	r.Handle(basePath, guard(rbac.ActionCreate, h.create)).Methods("POST")
	r.Handle(basePath+"/{id}", guard(rbac.ActionRead, h.get)).Methods("GET")
	r.Handle(basePath+"/{id}", guard(rbac.ActionUpdate, h.update)).Methods("PUT")
	r.Handle(basePath+"/{id}", guard(rbac.ActionDelete, h.delete)).Methods("DELETE")
}

func (h *resourceHandler) list(w http.ResponseWriter, r *http.Request) {
	filter := tracking.ListFilter{
		LowStock: httputil.ParseQueryBool(r, "lowStock", false),
		Category: httputil.ParseQueryString(r, "category", ""),
		Status:   httputil.ParseQueryString(r, "status", ""),
		Query:    httputil.ParseQueryString(r, "q", ""),
	}

	records, err := h.service.List(r.Context(), filter)
	if err != nil {
		httputil.WriteUnexpected(w, err)
		return
	}

	httputil.WriteSuccess(w, records)
}

func (h *resourceHandler) get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	record, err := h.service.Get(r.Context(), id)
	if errors.Is(err, tracking.ErrNotFound) {
		httputil.WriteNotFound(w, h.notFound)
		return
	}
	if err != nil {
		httputil.WriteUnexpected(w, err)
		return
	}

	httputil.WriteSuccess(w, record)
}

func (h *resourceHandler) create(w http.ResponseWriter, r *http.Request) {
	// Parse failure is reported as an unexpected error, not a validation
	// error; the validators only run on well-formed JSON.
	payload, err := httputil.ParseJSONBody(r)
	if err != nil {
		httputil.WriteUnexpected(w, err)
		return
	}

	normalized, fieldErrors := h.createSchema.Validate(payload)
	if fieldErrors != nil {
		httputil.WriteValidationFailed(w, fieldErrors)
		return
	}

	record, err := h.service.Create(r.Context(), normalized)
	if err != nil {
		httputil.WriteUnexpected(w, err)
		return
	}

	httputil.WriteCreated(w, record)
}

func (h *resourceHandler) update(w http.ResponseWriter, r *http.Request) {
	payload, err := httputil.ParseJSONBody(r)
	if err != nil {
		httputil.WriteUnexpected(w, err)
		return
	}

	normalized, fieldErrors := h.updateSchema.Validate(payload)
	if fieldErrors != nil {
		httputil.WriteValidationFailed(w, fieldErrors)
		return
	}

	id := mux.Vars(r)["id"]
	record, err := h.service.Update(r.Context(), id, normalized)
	if errors.Is(err, tracking.ErrNotFound) {
		httputil.WriteNotFound(w, h.notFound)
		return
	}
	if err != nil {
		httputil.WriteUnexpected(w, err)
		return
	}

	httputil.WriteSuccess(w, record)
}

func (h *resourceHandler) delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.service.Delete(r.Context(), id)
	if errors.Is(err, tracking.ErrNotFound) {
		httputil.WriteNotFound(w, h.notFound)
		return
	}
	if err != nil {
		httputil.WriteUnexpected(w, err)
		return
	}

	httputil.WriteDeleted(w)
}
