package tracking

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// A second connection would see a different in-memory database.
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

func TestProjectCRUD(t *testing.T) {
	svc := NewProjectService(testDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]interface{}{
		"name":      "Refinery Unit 4",
		"client":    "Petrokim",
		"status":    "planned",
		"startDate": "2026-01-15",
	})
	require.NoError(t, err)

	project, ok := created.(*Project)
	require.True(t, ok)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "Refinery Unit 4", project.Name)
	assert.Equal(t, "planned", project.Status)

	got, err := svc.Get(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.(*Project).ID)
	assert.Equal(t, "Petrokim", got.(*Project).Client)

	updated, err := svc.Update(ctx, project.ID, map[string]interface{}{
		"status": "active",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", updated.(*Project).Status)
	// Partial update leaves other fields untouched.
	assert.Equal(t, "Refinery Unit 4", updated.(*Project).Name)

	require.NoError(t, svc.Delete(ctx, project.ID))

	_, err = svc.Get(ctx, project.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectGetUnknownID(t *testing.T) {
	svc := NewProjectService(testDB(t))

	_, err := svc.Get(context.Background(), "doesnotexist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectUpdateUnknownID(t *testing.T) {
	svc := NewProjectService(testDB(t))

	_, err := svc.Update(context.Background(), "doesnotexist", map[string]interface{}{
		"name": "anything",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectDeleteUnknownID(t *testing.T) {
	svc := NewProjectService(testDB(t))

	err := svc.Delete(context.Background(), "doesnotexist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectEmptyUpdateIsNoOpTouch(t *testing.T) {
	svc := NewProjectService(testDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]interface{}{
		"name":      "Unit 5",
		"startDate": "2026-02-01",
	})
	require.NoError(t, err)
	id := created.(*Project).ID

	updated, err := svc.Update(ctx, id, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Unit 5", updated.(*Project).Name)
}

func TestProjectListStatusFilter(t *testing.T) {
	svc := NewProjectService(testDB(t))
	ctx := context.Background()

	for _, p := range []map[string]interface{}{
		{"name": "A", "status": "planned", "startDate": "2026-01-01"},
		{"name": "B", "status": "active", "startDate": "2026-01-02"},
		{"name": "C", "status": "active", "startDate": "2026-01-03"},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx, ListFilter{Status: "active"})
	require.NoError(t, err)
	assert.Len(t, listed.([]*Project), 2)

	listed, err = svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, listed.([]*Project), 3)
}

func TestProjectListQueryFilter(t *testing.T) {
	svc := NewProjectService(testDB(t))
	ctx := context.Background()

	for _, p := range []map[string]interface{}{
		{"name": "Refinery Unit 4", "client": "Petrokim", "startDate": "2026-01-01"},
		{"name": "Tank Farm", "client": "Aksa", "startDate": "2026-01-02"},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx, ListFilter{Query: "Refinery"})
	require.NoError(t, err)
	require.Len(t, listed.([]*Project), 1)
	assert.Equal(t, "Refinery Unit 4", listed.([]*Project)[0].Name)

	// Query matches the client column too.
	listed, err = svc.List(ctx, ListFilter{Query: "Aksa"})
	require.NoError(t, err)
	assert.Len(t, listed.([]*Project), 1)
}

func TestProjectListStatusBeatsQuery(t *testing.T) {
	svc := NewProjectService(testDB(t))
	ctx := context.Background()

	for _, p := range []map[string]interface{}{
		{"name": "Refinery Unit 4", "status": "planned", "startDate": "2026-01-01"},
		{"name": "Tank Farm", "status": "active", "startDate": "2026-01-02"},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	// With both filters set only status applies; the query is ignored even
	// though it matches nothing.
	listed, err := svc.List(ctx, ListFilter{Status: "active", Query: "Refinery"})
	require.NoError(t, err)
	require.Len(t, listed.([]*Project), 1)
	assert.Equal(t, "Tank Farm", listed.([]*Project)[0].Name)
}

func createInventoryItem(t *testing.T, svc *InventoryService, name, category string, quantity, minQuantity float64) *InventoryItem {
	t.Helper()
	created, err := svc.Create(context.Background(), map[string]interface{}{
		"name":        name,
		"category":    category,
		"quantity":    quantity,
		"unit":        "pc",
		"minQuantity": minQuantity,
	})
	require.NoError(t, err)
	return created.(*InventoryItem)
}

func TestInventoryLowStockFilter(t *testing.T) {
	svc := NewInventoryService(testDB(t))

	createInventoryItem(t, svc, "Weld Rod", "consumable", 2, 10)
	createInventoryItem(t, svc, "Gasket", "fitting", 50, 10)
	createInventoryItem(t, svc, "Flange", "fitting", 10, 10)

	listed, err := svc.List(context.Background(), ListFilter{LowStock: true})
	require.NoError(t, err)

	items := listed.([]*InventoryItem)
	require.Len(t, items, 2)
	// quantity == min_quantity counts as low stock.
	assert.Equal(t, "Flange", items[0].Name)
	assert.Equal(t, "Weld Rod", items[1].Name)
}

func TestInventoryLowStockBeatsCategory(t *testing.T) {
	svc := NewInventoryService(testDB(t))

	createInventoryItem(t, svc, "Weld Rod", "consumable", 2, 10)
	createInventoryItem(t, svc, "Gasket", "fitting", 50, 10)

	// Both filters set: only the low-stock condition applies, so the fitting
	// category filter is ignored and the consumable is returned.
	listed, err := svc.List(context.Background(), ListFilter{LowStock: true, Category: "fitting"})
	require.NoError(t, err)

	items := listed.([]*InventoryItem)
	require.Len(t, items, 1)
	assert.Equal(t, "Weld Rod", items[0].Name)
}

func TestInventoryCategoryBeatsQuery(t *testing.T) {
	svc := NewInventoryService(testDB(t))

	createInventoryItem(t, svc, "Weld Rod", "consumable", 2, 10)
	createInventoryItem(t, svc, "Gasket", "fitting", 50, 10)

	listed, err := svc.List(context.Background(), ListFilter{Category: "fitting", Query: "Weld"})
	require.NoError(t, err)

	items := listed.([]*InventoryItem)
	require.Len(t, items, 1)
	assert.Equal(t, "Gasket", items[0].Name)
}

func TestInventoryQueryFilter(t *testing.T) {
	svc := NewInventoryService(testDB(t))

	createInventoryItem(t, svc, "Weld Rod", "consumable", 2, 10)
	createInventoryItem(t, svc, "Gasket", "fitting", 50, 10)

	listed, err := svc.List(context.Background(), ListFilter{Query: "Rod"})
	require.NoError(t, err)
	assert.Len(t, listed.([]*InventoryItem), 1)
}

func TestInventoryUpdateQuantity(t *testing.T) {
	svc := NewInventoryService(testDB(t))
	item := createInventoryItem(t, svc, "Weld Rod", "consumable", 2, 10)

	updated, err := svc.Update(context.Background(), item.ID, map[string]interface{}{
		"quantity": float64(25),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(25), updated.(*InventoryItem).Quantity)
	assert.Equal(t, "consumable", updated.(*InventoryItem).Category)
}

func TestWorkOrderCRUD(t *testing.T) {
	svc := NewWorkOrderService(testDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]interface{}{
		"orderNumber": "WO-100",
		"projectId":   "p1",
		"status":      "open",
		"priority":    "high",
	})
	require.NoError(t, err)

	wo := created.(*WorkOrder)
	assert.Equal(t, "WO-100", wo.OrderNumber)
	assert.Equal(t, "high", wo.Priority)

	listed, err := svc.List(ctx, ListFilter{Status: "open"})
	require.NoError(t, err)
	assert.Len(t, listed.([]*WorkOrder), 1)

	updated, err := svc.Update(ctx, wo.ID, map[string]interface{}{"status": "completed"})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.(*WorkOrder).Status)

	require.NoError(t, svc.Delete(ctx, wo.ID))
	assert.ErrorIs(t, svc.Delete(ctx, wo.ID), ErrNotFound)
}

func TestPersonnelCRUD(t *testing.T) {
	svc := NewPersonnelService(testDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]interface{}{
		"firstName": "Ayşe",
		"lastName":  "Demir",
		"title":     "welder",
	})
	require.NoError(t, err)

	person := created.(*Personnel)
	assert.Equal(t, "Ayşe", person.FirstName)

	listed, err := svc.List(ctx, ListFilter{Query: "Demir"})
	require.NoError(t, err)
	assert.Len(t, listed.([]*Personnel), 1)

	listed, err = svc.List(ctx, ListFilter{Query: "Yılmaz"})
	require.NoError(t, err)
	assert.Empty(t, listed.([]*Personnel))
}

func TestShipmentCRUD(t *testing.T) {
	svc := NewShipmentService(testDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]interface{}{
		"shipmentNumber": "SHP-9",
		"destination":    "Izmit site",
		"status":         "preparing",
	})
	require.NoError(t, err)

	shipment := created.(*Shipment)

	updated, err := svc.Update(ctx, shipment.ID, map[string]interface{}{
		"status":    "shipped",
		"carrier":   "Aras",
		"shippedAt": "2026-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "shipped", updated.(*Shipment).Status)
	assert.Equal(t, "Aras", updated.(*Shipment).Carrier)
}

func TestShipmentListStatusBeatsQuery(t *testing.T) {
	svc := NewShipmentService(testDB(t))
	ctx := context.Background()

	for _, s := range []map[string]interface{}{
		{"shipmentNumber": "SHP-1", "destination": "Izmit site", "status": "preparing"},
		{"shipmentNumber": "SHP-2", "destination": "Aliağa site", "status": "shipped"},
	} {
		_, err := svc.Create(ctx, s)
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx, ListFilter{Status: "shipped"})
	require.NoError(t, err)
	require.Len(t, listed.([]*Shipment), 1)

	// Status wins over the query even when the query matches the other record.
	listed, err = svc.List(ctx, ListFilter{Status: "shipped", Query: "SHP-1"})
	require.NoError(t, err)
	require.Len(t, listed.([]*Shipment), 1)
	assert.Equal(t, "SHP-2", listed.([]*Shipment)[0].ShipmentNumber)
}

func TestSpoolListStatusBeatsQuery(t *testing.T) {
	svc := NewSpoolService(testDB(t))
	ctx := context.Background()

	for _, s := range []map[string]interface{}{
		{"spoolNumber": "SP-1", "workOrderId": "wo1", "material": "carbon steel", "status": "cutting"},
		{"spoolNumber": "SP-2", "workOrderId": "wo1", "material": "stainless", "status": "welding"},
	} {
		_, err := svc.Create(ctx, s)
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx, ListFilter{Status: "welding"})
	require.NoError(t, err)
	require.Len(t, listed.([]*Spool), 1)

	listed, err = svc.List(ctx, ListFilter{Status: "welding", Query: "SP-1"})
	require.NoError(t, err)
	require.Len(t, listed.([]*Spool), 1)
	assert.Equal(t, "SP-2", listed.([]*Spool)[0].SpoolNumber)
}

func TestSpoolCRUD(t *testing.T) {
	svc := NewSpoolService(testDB(t))
	ctx := context.Background()

	created, err := svc.Create(ctx, map[string]interface{}{
		"spoolNumber":    "SP-7",
		"workOrderId":    "wo1",
		"material":       "carbon steel",
		"diameterInches": float64(6),
	})
	require.NoError(t, err)

	spool := created.(*Spool)
	assert.Equal(t, float64(6), spool.DiameterInches)

	listed, err := svc.List(ctx, ListFilter{Query: "SP-7"})
	require.NoError(t, err)
	assert.Len(t, listed.([]*Spool), 1)

	require.NoError(t, svc.Delete(ctx, spool.ID))
	_, err = svc.Get(ctx, spool.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNotFoundMessages(t *testing.T) {
	assert.Equal(t, "Proje bulunamadı.", NotFoundMessage("project"))
	assert.Equal(t, "İş emri bulunamadı.", NotFoundMessage("work_order"))
	assert.Equal(t, "Personel bulunamadı.", NotFoundMessage("personnel"))
	assert.Equal(t, "Sevkiyat bulunamadı.", NotFoundMessage("shipment"))
	assert.Equal(t, "Spool bulunamadı.", NotFoundMessage("spool"))
	assert.Equal(t, "Stok kalemi bulunamadı.", NotFoundMessage("inventory_item"))
	assert.Equal(t, "Kayıt bulunamadı.", NotFoundMessage("unknown"))
}

func TestBuildUpdateIgnoresUnmappedFields(t *testing.T) {
	query, args := buildUpdate("projects", "p1", map[string]interface{}{
		"name":   "New Name",
		"bogus":  "ignored",
		"status": "active",
	}, projectUpdateColumns)

	assert.Equal(t, "UPDATE projects SET updated_at = $1, name = $2, status = $3 WHERE id = $4", query)
	require.Len(t, args, 4)
	assert.Equal(t, "New Name", args[1])
	assert.Equal(t, "active", args[2])
	assert.Equal(t, "p1", args[3])
}
