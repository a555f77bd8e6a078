package mocks

import (
	pDomain "github.com/ridloal/shopping-cart-widget/internal/product/domain"

	"github.com/stretchr/testify/mock"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(id int) (pDomain.Product, error) {
	args := m.Called(id)
	return args.Get(0).(pDomain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts() []pDomain.Product {
	args := m.Called()
	if res := args.Get(0); res != nil {
		return res.([]pDomain.Product)
	}
	return nil
}
