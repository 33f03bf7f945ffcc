package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/catalog"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/events"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sportsmart_orders_placed_total",
		Help: "Orders accepted at checkout.",
	})
	orderRevenue = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sportsmart_order_revenue_total",
		Help: "Sum of order totals accepted at checkout.",
	})
)

type OrderItemInput struct {
	ProductID string `json:"productId" validate:"required"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"qty" validate:"gte=1"`
}

type OrderInput struct {
	Items        []OrderItemInput    `json:"orderItems" validate:"dive"`
	ShippingInfo models.ShippingInfo `json:"shippingInfo"`
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   primitive.ObjectID
	Role models.Role
}

func (a Actor) IsAdmin() bool { return a.Role == models.RoleAdmin }

type OrderService struct {
	orders   OrderStore
	products ProductStore
	events   events.Publisher
	now      func() time.Time
}

func NewOrderService(orders OrderStore, products ProductStore, pub events.Publisher) *OrderService {
	return &OrderService{orders: orders, products: products, events: pub, now: time.Now}
}

// Place prices every line from the catalog, rejects lines that cannot be bought in
// the requested quantity and stores the order as paid. Stock is not decremented.
func (s *OrderService) Place(ctx context.Context, actor Actor, in OrderInput) (o models.Order, err error) {
	ctx, span := startSpan(ctx, "OrderService.Place")
	defer func() { endSpan(span, err) }()

	if len(in.Items) == 0 {
		return models.Order{}, invalidf("no order items")
	}
	if err := check(in); err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, 0, len(in.Items))
	total := models.NewMoney(0)
	for _, line := range in.Items {
		item, err := s.price(ctx, line)
		if err != nil {
			return models.Order{}, err
		}
		items = append(items, item)
		total = total.Add(item.PriceAtPurchase.Mul(item.Quantity))
	}

	now := s.now().UTC()
	o = models.Order{
		UserID:       actor.ID,
		Items:        items,
		ShippingInfo: in.ShippingInfo,
		TotalPrice:   total,
		IsPaid:       true,
		PaidAt:       now,
		CreatedAt:    now,
	}
	if err := s.orders.Create(ctx, &o); err != nil {
		return models.Order{}, err
	}

	ordersPlaced.Inc()
	orderRevenue.Add(total.InexactFloat64())
	emit(ctx, s.events, events.OrderPlaced, o.ID.Hex(), o)
	return o, nil
}

func (s *OrderService) price(ctx context.Context, line OrderItemInput) (models.OrderItem, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(line.ProductID))
	if err != nil {
		return models.OrderItem{}, invalidf("invalid product id %q", line.ProductID)
	}
	p, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.OrderItem{}, invalidf("product %s not found", line.ProductID)
	}
	if err != nil {
		return models.OrderItem{}, err
	}

	a := catalog.ResolveSKU(p, strings.TrimSpace(line.SKU))
	if a.Status == catalog.StatusUnavailable {
		return models.OrderItem{}, invalidf("%s: unknown variant %q", p.Name, line.SKU)
	}
	if !a.Purchasable || a.Stock < line.Quantity {
		return models.OrderItem{}, invalidf("%s is not available in the requested quantity", p.Name)
	}
	return models.OrderItem{
		ProductID:       p.ID,
		SKU:             a.SKU,
		Name:            p.Name,
		Quantity:        line.Quantity,
		PriceAtPurchase: a.Price,
	}, nil
}

// Get returns an order to its owner or to an admin.
func (s *OrderService) Get(ctx context.Context, actor Actor, id primitive.ObjectID) (models.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if o.UserID != actor.ID && !actor.IsAdmin() {
		return models.Order{}, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) Mine(ctx context.Context, actor Actor) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, actor.ID)
}

func (s *OrderService) All(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListAll(ctx)
}
