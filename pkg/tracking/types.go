package tracking

import (
	"time"

	"github.com/spooltrack/spooltrack/pkg/rbac"
)

// Project is a fabrication project grouping work orders
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Client      string    `json:"client,omitempty"`
	Status      string    `json:"status"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// WorkOrder is a unit of shop-floor work under a project
type WorkOrder struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	ProjectID   string    `json:"projectId"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	DueDate     string    `json:"dueDate,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Personnel is a shop employee record
type Personnel struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Title     string    `json:"title"`
	Phone     string    `json:"phone,omitempty"`
	HiredAt   string    `json:"hiredAt,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Shipment is an outbound delivery of finished spools
type Shipment struct {
	ID             string    `json:"id"`
	ShipmentNumber string    `json:"shipmentNumber"`
	Destination    string    `json:"destination"`
	Status         string    `json:"status"`
	Carrier        string    `json:"carrier,omitempty"`
	ShippedAt      string    `json:"shippedAt,omitempty"`
	WorkOrderID    string    `json:"workOrderId,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Spool is a fabricated pipe spool, the shop's production unit
type Spool struct {
	ID             string    `json:"id"`
	SpoolNumber    string    `json:"spoolNumber"`
	WorkOrderID    string    `json:"workOrderId"`
	Material       string    `json:"material"`
	DiameterInches float64   `json:"diameterInches"`
	Status         string    `json:"status"`
	DrawingNumber  string    `json:"drawingNumber,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// InventoryItem is a stocked material or consumable
type InventoryItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	MinQuantity float64   `json:"minQuantity"`
	Location    string    `json:"location,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// notFoundMessages are the user-facing strings the UI shows when a record is
// missing. They are surfaced verbatim in 404 envelopes.
var notFoundMessages = map[rbac.Resource]string{
	rbac.ResourceProject:       "Proje bulunamadı.",
	rbac.ResourceWorkOrder:     "İş emri bulunamadı.",
	rbac.ResourcePersonnel:     "Personel bulunamadı.",
	rbac.ResourceShipment:      "Sevkiyat bulunamadı.",
	rbac.ResourceSpool:         "Spool bulunamadı.",
	rbac.ResourceInventoryItem: "Stok kalemi bulunamadı.",
}

// NotFoundMessage returns the user-facing message for a missing record
func NotFoundMessage(resource rbac.Resource) string {
	if msg, ok := notFoundMessages[resource]; ok {
		return msg
	}
	return "Kayıt bulunamadı."
}
