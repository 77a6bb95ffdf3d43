package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/sweetshop-api/dto"
	"github.com/sweetshop-api/models"
	"github.com/sweetshop-api/repositories"
	"gorm.io/gorm"
)

// OrderService handles order placement and status changes
type OrderService struct {
	orderRepo *repositories.OrderRepository
	sweetRepo *repositories.SweetRepository
}

// NewOrderService creates a new order service instance
func NewOrderService() *OrderService {
	return &OrderService{
		orderRepo: repositories.NewOrderRepository(),
		sweetRepo: repositories.NewSweetRepository(),
	}
}

// ListOrders retrieves orders with nested items and sweets.
// Admin sees all orders, regular users only their own.
func (s *OrderService) ListOrders(userID string, isAdmin bool) ([]models.Order, error) {
	if isAdmin {
		return s.orderRepo.FindAllWithItems()
	}
	return s.orderRepo.FindByUserIDWithItems(userID)
}

// GetOrderDetail retrieves a single order with its items.
// Access control: admin can view any order, regular users only their own.
func (s *OrderService) GetOrderDetail(orderID, userID string, isAdmin bool) (models.Order, error) {
	order, err := s.orderRepo.FindByIDWithItems(orderID)
	if err != nil {
		return models.Order{}, err
	}

	if !isAdmin && order.UserID != userID {
		return models.Order{}, fmt.Errorf("%w: you don't have permission to access this order", ErrForbidden)
	}

	return order, nil
}

// PlaceOrder validates the requested items, snapshots current catalog
// prices and persists the order header plus line items in a single
// transaction.
//
// The total is computed from live catalog prices only; any price the
// client sent is ignored. Items referencing a sweet that no longer
// exists are dropped from the order and contribute nothing to the
// total. Status is forced to pending and user_id to the caller.
func (s *OrderService) PlaceOrder(userID string, req dto.CreateOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, fmt.Errorf("%w: order must contain at least one item", ErrInvalidRequest)
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(req.Items))

	for _, item := range req.Items {
		sweet, err := s.sweetRepo.FindByID(item.SweetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("Order item references unknown sweet %s, skipping", item.SweetID)
				continue
			}
			return models.Order{}, err
		}

		totalAmount += sweet.Price * float64(item.Quantity)
		items = append(items, models.OrderItem{
			SweetID:     sweet.ID,
			Quantity:    item.Quantity,
			PriceAtTime: sweet.Price,
		})
	}

	order := models.Order{
		UserID:          userID,
		Status:          models.OrderStatusPending,
		TotalAmount:     totalAmount,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryDate:    req.DeliveryDate,
		Notes:           req.Notes,
	}

	// Header only: callers re-fetch through the list endpoints when
	// they need the nested items.
	return s.orderRepo.CreateWithItems(order, items)
}

// UpdateStatus changes an order's status.
// Access control: admin or the owning user. Any of the six status
// values may replace any other; there is no transition table.
func (s *OrderService) UpdateStatus(orderID, userID string, isAdmin bool, status string) (models.Order, error) {
	orderStatus := models.OrderStatus(status)
	if !orderStatus.IsValid() {
		return models.Order{}, fmt.Errorf("%w: invalid order status %q", ErrInvalidRequest, status)
	}

	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		return models.Order{}, err
	}

	if !isAdmin && order.UserID != userID {
		return models.Order{}, fmt.Errorf("%w: you don't have permission to update this order", ErrForbidden)
	}

	return s.orderRepo.UpdateStatus(orderID, orderStatus)
}
