package repositories

import (
	"github.com/sweetshop-api/database"
	"github.com/sweetshop-api/models"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for orders
type OrderRepository struct{}

// NewOrderRepository creates a new order repository instance
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// FindAllWithItems retrieves all orders with nested items, item sweets
// and the owning profile, newest first
func (r *OrderRepository) FindAllWithItems() ([]models.Order, error) {
	var orders []models.Order
	result := database.DB.
		Preload("Items.Sweet").
		Preload("Profile").
		Order("created_at desc").
		Find(&orders)
	return orders, result.Error
}

// FindByUserIDWithItems retrieves one user's orders with nested items
// and item sweets, newest first
func (r *OrderRepository) FindByUserIDWithItems(userID string) ([]models.Order, error) {
	var orders []models.Order
	result := database.DB.
		Preload("Items.Sweet").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders)
	return orders, result.Error
}

// FindByIDWithItems retrieves a single order with nested items and
// item sweets
func (r *OrderRepository) FindByIDWithItems(id string) (models.Order, error) {
	var order models.Order
	result := database.DB.
		Preload("Items.Sweet").
		First(&order, "id = ?", id)
	return order, result.Error
}

// FindByID retrieves an order header by its ID
func (r *OrderRepository) FindByID(id string) (models.Order, error) {
	var order models.Order
	result := database.DB.First(&order, "id = ?", id)
	return order, result.Error
}

// CreateWithItems inserts an order header and its line items inside a
// single transaction. Either everything lands or nothing does.
func (r *OrderRepository) CreateWithItems(order models.Order, items []models.OrderItem) (models.Order, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return order, err
}

// UpdateStatus sets the status on an order and returns the fresh row
func (r *OrderRepository) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	if err := database.DB.Model(&models.Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return models.Order{}, err
	}
	return r.FindByID(id)
}
