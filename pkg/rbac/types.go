package rbac

// Resource represents a resource type in the system
type Resource string

const (
	ResourceProject       Resource = "project"
	ResourceWorkOrder     Resource = "work_order"
	ResourcePersonnel     Resource = "personnel"
	ResourceShipment      Resource = "shipment"
	ResourceSpool         Resource = "spool"
	ResourceInventoryItem Resource = "inventory_item"
)

// Resources returns every tracked resource type
func Resources() []Resource {
	return []Resource{
		ResourceProject,
		ResourceWorkOrder,
		ResourcePersonnel,
		ResourceShipment,
		ResourceSpool,
		ResourceInventoryItem,
	}
}

// Action represents an action that can be performed on a resource
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Actions returns every supported action
func Actions() []Action {
	return []Action{ActionRead, ActionCreate, ActionUpdate, ActionDelete}
}

// Permission represents a specific permission (resource + action)
type Permission struct {
	Resource Resource `json:"resource"`
	Action   Action   `json:"action"`
}

// String returns a string representation of the permission
func (p Permission) String() string {
	return string(p.Resource) + ":" + string(p.Action)
}
