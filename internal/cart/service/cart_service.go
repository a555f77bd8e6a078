package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ridloal/shopping-cart-widget/internal/cart/domain"
	"github.com/ridloal/shopping-cart-widget/internal/platform/logger"
	"github.com/ridloal/shopping-cart-widget/internal/platform/money"
	pDomain "github.com/ridloal/shopping-cart-widget/internal/product/domain"
	pRepo "github.com/ridloal/shopping-cart-widget/internal/product/repository"
)

// Snapshot adalah salinan state keranjang untuk di-render.
type Snapshot struct {
	Lines     []domain.CartLine
	Total     money.Amount
	ItemCount int
}

type CartService interface {
	AddProduct(productID, quantity int) (domain.CartLine, error)
	RemoveProduct(productID int) bool
	ClearCart()
	GetCart() Snapshot
	ListCatalog() []pDomain.Product
}

// EventRecorder receives cart events, e.g. for metrics.
type EventRecorder interface {
	ItemAdded(quantity int)
	AddRejected(reason string)
	LineRemoved()
	CartCleared()
	CartChanged(lines int, totalMinor int64)
}

const (
	RejectNotFound        = "not_found"
	RejectInvalidQuantity = "invalid_quantity"
)

type noopRecorder struct{}

func (noopRecorder) ItemAdded(int)          {}
func (noopRecorder) AddRejected(string)     {}
func (noopRecorder) LineRemoved()           {}
func (noopRecorder) CartCleared()           {}
func (noopRecorder) CartChanged(int, int64) {}

type cartServiceImpl struct {
	// Semua interaksi diserialisasi: setiap operasi atomik dan sinkron.
	mu       sync.Mutex
	cart     *domain.Cart
	catalog  pRepo.ProductRepository
	recorder EventRecorder
}

// NewCartService membuat satu keranjang per proses. recorder boleh nil.
func NewCartService(catalog pRepo.ProductRepository, recorder EventRecorder) CartService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &cartServiceImpl{
		cart:     domain.NewCart(),
		catalog:  catalog,
		recorder: recorder,
	}
}

func (s *cartServiceImpl) AddProduct(productID, quantity int) (domain.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, err := s.catalog.FindByID(productID)
	if err != nil {
		if errors.Is(err, pRepo.ErrProductNotFound) {
			s.recorder.AddRejected(RejectNotFound)
			logger.Warn("AddProduct: unknown product id %d ignored", productID)
		}
		return domain.CartLine{}, fmt.Errorf("add product %d: %w", productID, err)
	}

	line, err := s.cart.AddItem(product, quantity)
	if err != nil {
		s.recorder.AddRejected(RejectInvalidQuantity)
		logger.Warn("AddProduct: rejected quantity %d for product %d", quantity, productID)
		return domain.CartLine{}, fmt.Errorf("add product %d: %w", productID, err)
	}

	s.recorder.ItemAdded(quantity)
	s.changed()
	logger.Debug("AddProduct: product %d now has quantity %d", productID, line.Quantity)
	return line, nil
}

func (s *cartServiceImpl) RemoveProduct(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.RemoveItem(productID) {
		return false
	}
	s.recorder.LineRemoved()
	s.changed()
	logger.Debug("RemoveProduct: line for product %d removed", productID)
	return true
}

func (s *cartServiceImpl) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.recorder.CartCleared()
	s.changed()
}

func (s *cartServiceImpl) GetCart() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Lines:     s.cart.Lines(),
		Total:     s.cart.Total(),
		ItemCount: s.cart.ItemCount(),
	}
}

func (s *cartServiceImpl) ListCatalog() []pDomain.Product {
	return s.catalog.ListProducts()
}

// dipanggil dengan mu terkunci
func (s *cartServiceImpl) changed() {
	s.recorder.CartChanged(s.cart.Len(), s.cart.Total().Minor())
}
