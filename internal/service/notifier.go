package service

// Notifier publishes change events to live clients.
type Notifier interface {
	Notify(event string, payload interface{})
}

// Change event names
const (
	EventProductCreated   = "product_created"
	EventProductUpdated   = "product_updated"
	EventProductDeleted   = "product_deleted"
	EventInventoryChanged = "inventory_changed"
	EventInventoryDeleted = "inventory_deleted"
	EventSaleCreated      = "sale_created"
	EventSaleUpdated      = "sale_updated"
	EventSaleDeleted      = "sale_deleted"
)
