package service

import (
	"testing"

	"iphone_store/internal/domain/cart/model"
	productModel "iphone_store/internal/domain/product/model"
	productRepo "iphone_store/internal/domain/product/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockCartRepository is a mock of CartRepository
type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) Create(cart *model.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) GetByID(id uint) (*model.Cart, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) GetByUserAndProduct(userID, productID uint) (*model.Cart, error) {
	args := m.Called(userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Cart), args.Error(1)
}

func (m *MockCartRepository) GetActiveByUser(userID uint) ([]model.Cart, error) {
	args := m.Called(userID)
	return args.Get(0).([]model.Cart), args.Error(1)
}

func (m *MockCartRepository) Update(cart *model.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) Delete(cart *model.Cart) error {
	args := m.Called(cart)
	return args.Error(0)
}

func (m *MockCartRepository) DeactivateByUser(userID uint) (int64, error) {
	args := m.Called(userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(product *productModel.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(id uint) (*productModel.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productModel.Product), args.Error(1)
}

func (m *MockProductRepository) SkuExists(sku string, excludeID uint) (bool, error) {
	args := m.Called(sku, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) GetList(filter productRepo.ListFilter) ([]productModel.Product, int64, error) {
	args := m.Called(filter)
	return args.Get(0).([]productModel.Product), args.Get(1).(int64), args.Error(2)
}

func (m *MockProductRepository) Update(product *productModel.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) AddImage(image *productModel.ProductImage) error {
	args := m.Called(image)
	return args.Error(0)
}

func (m *MockProductRepository) GetImage(imageID uint) (*productModel.ProductImage, error) {
	args := m.Called(imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*productModel.ProductImage), args.Error(1)
}

func (m *MockProductRepository) DeleteImage(imageID uint) error {
	args := m.Called(imageID)
	return args.Error(0)
}

func testProduct() *productModel.Product {
	p := &productModel.Product{ProductName: "iPhone 15", Sku: "IP15", Price: 19990000}
	p.ID = 5
	return p
}

func TestAdd(t *testing.T) {
	t.Run("First add creates a new line", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductRepository)
		service := NewCartService(mockRepo, mockProducts)

		mockProducts.On("GetByID", uint(5)).Return(testProduct(), nil)
		mockRepo.On("GetByUserAndProduct", uint(1), uint(5)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Create", mock.AnythingOfType("*model.Cart")).Return(nil)

		cart, err := service.Add(1, 5, 2)

		assert.NoError(t, err)
		assert.Equal(t, 2, cart.Quantity)
		assert.True(t, cart.IsActive)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Second add of same product consolidates quantities", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductRepository)
		service := NewCartService(mockRepo, mockProducts)

		existing := &model.Cart{UserID: 1, ProductID: 5, Quantity: 2}
		existing.IsActive = true
		mockProducts.On("GetByID", uint(5)).Return(testProduct(), nil)
		mockRepo.On("GetByUserAndProduct", uint(1), uint(5)).Return(existing, nil)
		mockRepo.On("Update", existing).Return(nil)

		cart, err := service.Add(1, 5, 3)

		assert.NoError(t, err)
		assert.Equal(t, 5, cart.Quantity)
	})

	t.Run("Adding reactivates a deactivated line and keeps accumulating", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductRepository)
		service := NewCartService(mockRepo, mockProducts)

		stale := &model.Cart{UserID: 1, ProductID: 5, Quantity: 4}
		stale.IsActive = false
		mockProducts.On("GetByID", uint(5)).Return(testProduct(), nil)
		mockRepo.On("GetByUserAndProduct", uint(1), uint(5)).Return(stale, nil)
		mockRepo.On("Update", stale).Return(nil)

		cart, err := service.Add(1, 5, 1)

		assert.NoError(t, err)
		assert.True(t, cart.IsActive)
		assert.Equal(t, 5, cart.Quantity)
	})

	t.Run("Non-positive quantity is rejected", func(t *testing.T) {
		service := NewCartService(new(MockCartRepository), new(MockProductRepository))

		_, err := service.Add(1, 5, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = service.Add(1, 5, -3)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("Unknown product is rejected", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		mockProducts := new(MockProductRepository)
		service := NewCartService(mockRepo, mockProducts)

		mockProducts.On("GetByID", uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Add(1, 99, 1)

		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestGetAndUpdate(t *testing.T) {
	t.Run("Cannot touch another user's line", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		service := NewCartService(mockRepo, new(MockProductRepository))

		other := &model.Cart{UserID: 2, ProductID: 5, Quantity: 1}
		other.ID = 10
		mockRepo.On("GetByID", uint(10)).Return(other, nil)

		_, err := service.Get(1, 10)
		assert.ErrorIs(t, err, ErrNotOwner)

		err = service.Remove(1, 10)
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Update quantity replaces the value", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		service := NewCartService(mockRepo, new(MockProductRepository))

		line := &model.Cart{UserID: 1, ProductID: 5, Quantity: 1}
		line.ID = 10
		mockRepo.On("GetByID", uint(10)).Return(line, nil)
		mockRepo.On("Update", line).Return(nil)

		cart, err := service.UpdateQuantity(1, 10, 7)

		assert.NoError(t, err)
		assert.Equal(t, 7, cart.Quantity)
	})

	t.Run("Missing line maps to not found", func(t *testing.T) {
		mockRepo := new(MockCartRepository)
		service := NewCartService(mockRepo, new(MockProductRepository))

		mockRepo.On("GetByID", uint(404)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Get(1, 404)
		assert.ErrorIs(t, err, ErrCartItemNotFound)
	})
}

func TestClear(t *testing.T) {
	mockRepo := new(MockCartRepository)
	service := NewCartService(mockRepo, new(MockProductRepository))

	mockRepo.On("DeactivateByUser", uint(1)).Return(int64(3), nil)

	err := service.Clear(1)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
