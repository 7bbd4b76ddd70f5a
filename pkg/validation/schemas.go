package validation

import (
	"github.com/spooltrack/spooltrack/pkg/rbac"
)

// Resource schemas. Each resource declares its create schema; the update
// schema is derived with Optional(). Field order here is the declaration
// order used for error accumulation.

// ProjectStatuses is the closed status set for projects
var ProjectStatuses = []string{"planned", "active", "on_hold", "completed"}

// WorkOrderStatuses is the closed status set for work orders
var WorkOrderStatuses = []string{"open", "in_progress", "completed", "cancelled"}

// WorkOrderPriorities is the closed priority set for work orders
var WorkOrderPriorities = []string{"low", "medium", "high"}

// ShipmentStatuses is the closed status set for shipments
var ShipmentStatuses = []string{"preparing", "shipped", "delivered"}

// SpoolStatuses is the closed status set for spools
var SpoolStatuses = []string{"cutting", "welding", "testing", "completed"}

var createSchemas = map[rbac.Resource]Schema{
	rbac.ResourceProject: {Fields: []Field{
		{Name: "name", Kind: KindString, Required: true},
		{Name: "client", Kind: KindOptionalString, Default: ""},
		{Name: "status", Kind: KindEnum, Enum: ProjectStatuses, Default: "planned"},
		{Name: "startDate", Kind: KindDate, Required: true},
		{Name: "endDate", Kind: KindDate},
		{Name: "description", Kind: KindOptionalString, Default: ""},
	}},
	rbac.ResourceWorkOrder: {Fields: []Field{
		{Name: "orderNumber", Kind: KindString, Required: true},
		{Name: "projectId", Kind: KindString, Required: true},
		{Name: "status", Kind: KindEnum, Enum: WorkOrderStatuses, Default: "open"},
		{Name: "priority", Kind: KindEnum, Enum: WorkOrderPriorities, Default: "medium"},
		{Name: "dueDate", Kind: KindDate},
		{Name: "notes", Kind: KindOptionalString, Default: ""},
	}},
	rbac.ResourcePersonnel: {Fields: []Field{
		{Name: "firstName", Kind: KindString, Required: true},
		{Name: "lastName", Kind: KindString, Required: true},
		{Name: "title", Kind: KindString, Required: true},
		{Name: "phone", Kind: KindOptionalString, Default: ""},
		{Name: "hiredAt", Kind: KindDate},
	}},
	rbac.ResourceShipment: {Fields: []Field{
		{Name: "shipmentNumber", Kind: KindString, Required: true},
		{Name: "destination", Kind: KindString, Required: true},
		{Name: "status", Kind: KindEnum, Enum: ShipmentStatuses, Default: "preparing"},
		{Name: "carrier", Kind: KindOptionalString, Default: ""},
		{Name: "shippedAt", Kind: KindDate},
		{Name: "workOrderId", Kind: KindOptionalString, Default: ""},
	}},
	rbac.ResourceSpool: {Fields: []Field{
		{Name: "spoolNumber", Kind: KindString, Required: true},
		{Name: "workOrderId", Kind: KindString, Required: true},
		{Name: "material", Kind: KindString, Required: true},
		{Name: "diameterInches", Kind: KindNumber, Default: float64(0)},
		{Name: "status", Kind: KindEnum, Enum: SpoolStatuses, Default: "cutting"},
		{Name: "drawingNumber", Kind: KindOptionalString, Default: ""},
	}},
	rbac.ResourceInventoryItem: {Fields: []Field{
		{Name: "name", Kind: KindString, Required: true},
		{Name: "category", Kind: KindString, Required: true},
		{Name: "quantity", Kind: KindNumber, Required: true},
		{Name: "unit", Kind: KindString, Required: true},
		{Name: "minQuantity", Kind: KindNumber, Default: float64(0)},
		{Name: "location", Kind: KindOptionalString, Default: ""},
	}},
}

// CreateSchema returns the create schema for a resource
func CreateSchema(resource rbac.Resource) (Schema, bool) {
	schema, ok := createSchemas[resource]
	return schema, ok
}

// UpdateSchema returns the update schema for a resource: every field
// optional, same per-field constraints, no defaults.
func UpdateSchema(resource rbac.Resource) (Schema, bool) {
	schema, ok := createSchemas[resource]
	if !ok {
		return Schema{}, false
	}
	return schema.Optional(), true
}
