package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Warehouse{},
		&Supplier{},
		&Product{},
		&LeadtimeModel{},

		// 2. Tables with single dependencies
		&Location{},     // depends on: Warehouse (and itself via parent)
		&SensorDevice{}, // depends on: Warehouse
		&Route{},        // depends on: Warehouse, LeadtimeModel
		&Order{},

		// 3. Tables with multiple dependencies
		&InventoryBalance{}, // depends on: Product, Location
		&InventoryMove{},    // depends on: Product, Location
		&PurchaseOrder{},    // depends on: Supplier, Warehouse, LeadtimeModel
		&Shipment{},         // depends on: Warehouse, Order, PurchaseOrder, Route

		// 4. Detail/junction tables
		&OrderLine{},   // depends on: Order, Product
		&POLine{},      // depends on: PurchaseOrder, Product
		&Observation{}, // depends on: SensorDevice, Product, Location
	}
}
