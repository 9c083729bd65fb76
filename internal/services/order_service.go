package services

import (
	"fmt"
	"log"

	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo    repositories.OrderRepository
	productRepo  repositories.ProductRepository
	shippingRepo repositories.ShippingTypeRepository
	mqClient     *rabbitmq.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, shippingRepo repositories.ShippingTypeRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		shippingRepo: shippingRepo,
		mqClient:     mqClient,
	}
}

// OrderLine is one requested line item.
type OrderLine struct {
	ProductID uint `json:"productId" validate:"required"`
	Qty       int  `json:"qty" validate:"required,gt=0"`
}

// PlaceOrderInput is everything needed to create an order. Unit prices are
// never taken from the caller; they are resolved from the product table at
// creation time.
type PlaceOrderInput struct {
	Billing        models.Address `json:"billing" validate:"required"`
	Shipping       models.Address `json:"shipping" validate:"required"`
	ShippingTypeID uint           `json:"shippingTypeId" validate:"required"`
	Tax            float64        `json:"orderTax" validate:"gte=0"`
	Lines          []OrderLine    `json:"orderProducts" validate:"required,min=1,dive"`
}

// PlaceOrder validates the requested lines, snapshots addresses and prices,
// persists the order with its line items and publishes an order.created
// event.
func (s *OrderService) PlaceOrder(userID uint, input PlaceOrderInput) (*models.Order, error) {
	shippingType, err := s.shippingRepo.GetByID(input.ShippingTypeID)
	if err != nil {
		return nil, fmt.Errorf("shipping type %d: %w", input.ShippingTypeID, err)
	}

	var subTotal float64
	items := make([]models.OrderProduct, 0, len(input.Lines))
	for _, line := range input.Lines {
		if line.Qty <= 0 {
			return nil, fmt.Errorf("invalid quantity %d for product %d", line.Qty, line.ProductID)
		}
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", line.ProductID, err)
		}
		items = append(items, models.OrderProduct{
			ProductID: product.ID,
			Qty:       line.Qty,
			UnitPrice: product.Price,
		})
		subTotal += product.Price * float64(line.Qty)
	}

	order := &models.Order{
		UserID:            userID,
		Billing:           input.Billing,
		Shipping:          input.Shipping,
		OrderSubTotal:     subTotal,
		OrderTax:          input.Tax,
		OrderShippingCost: shippingType.Price,
		ShippingTypeID:    shippingType.ID,
		Products:          items,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	if s.mqClient != nil {
		event := rabbitmq.OrderCreatedEvent{
			OrderID:  order.ID,
			UserID:   order.UserID,
			SubTotal: order.OrderSubTotal,
			Total:    order.OrderSubTotal + order.OrderTax + order.OrderShippingCost,
			Items:    len(order.Products),
		}
		if err := s.mqClient.PublishOrderCreated(event); err != nil {
			// The order is already committed; losing the event is logged,
			// not surfaced to the buyer.
			log.Printf("Warning: failed to publish order created event for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}

// GetOrderByID retrieves a single order if it belongs to the user.
func (s *OrderService) GetOrderByID(id, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrNotFound
	}
	return order, nil
}

// GetOrdersByUser retrieves all of a user's orders.
func (s *OrderService) GetOrdersByUser(userID uint) ([]models.Order, error) {
	return s.orderRepo.GetByUser(userID)
}
