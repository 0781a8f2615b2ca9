package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Order status
// ═══════════════════════════════════════════════════════════

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

var OrderStatuses = []OrderStatus{
	OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled,
}

func (s OrderStatus) IsValid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// ═══════════════════════════════════════════════════════════
// JSONB line snapshot
// ═══════════════════════════════════════════════════════════

// OrderLine is a snapshot of one cart line at checkout time. Prices are
// captured here so later catalog edits do not rewrite order history.
type OrderLine struct {
	ProductID uuid.UUID `json:"product_id"`
	Title     string    `json:"title"`
	Platform  Platform  `json:"platform"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
}

type OrderLineList []OrderLine

func (l *OrderLineList) Scan(value interface{}) error {
	if value == nil {
		*l = make(OrderLineList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan OrderLineList")
	}
	return json.Unmarshal(bytes, l)
}

func (l OrderLineList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]OrderLine{})
	}
	return json.Marshal(l)
}

// Address is the shipping destination captured with the order.
type Address struct {
	Street  string `json:"street" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// ═══════════════════════════════════════════════════════════
// Main Order Model (GORM)
// ═══════════════════════════════════════════════════════════

type Order struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	Items           OrderLineList  `json:"items" gorm:"type:jsonb;not null;default:'[]'"`
	Total           float64        `json:"total" gorm:"type:numeric(12,2);not null"`
	Status          OrderStatus    `json:"status" gorm:"type:varchar(50);not null;default:'pending';index"`
	ShippingAddress datatypes.JSON `json:"shipping_address" gorm:"type:jsonb"`
	PaymentMethod   string         `json:"payment_method" gorm:"type:varchar(100);not null"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_orders_created_at,sort:desc"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (o *Order) AfterFind(tx *gorm.DB) error {
	o.CreatedAt = o.CreatedAt.UTC()
	o.UpdatedAt = o.UpdatedAt.UTC()
	return nil
}

// ═══════════════════════════════════════════════════════════
// Request / Response Models
// ═══════════════════════════════════════════════════════════

// OrderLineInput is one cart line in a checkout request. Quantity alone is
// client-supplied; price is resolved server-side from the catalog.
type OrderLineInput struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest for checkout
type CreateOrderRequest struct {
	Items           []OrderLineInput `json:"items" binding:"required,min=1,dive"`
	ShippingAddress Address          `json:"shipping_address" binding:"required"`
	PaymentMethod   string           `json:"payment_method" binding:"required"`
}

// OrderHistoryResponse for list view
type OrderHistoryResponse struct {
	ID        uuid.UUID   `json:"id"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	ItemCount int         `json:"item_count"`
	CreatedAt time.Time   `json:"created_at"`
}

// UpdateOrderStatusRequest for the admin status transition endpoint
type UpdateOrderStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required"`
}
