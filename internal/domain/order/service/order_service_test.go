package service

import (
	"testing"

	cartModel "iphone_store/internal/domain/cart/model"
	"iphone_store/internal/domain/order/model"
	"iphone_store/internal/domain/order/repository"
	productModel "iphone_store/internal/domain/product/model"
	userModel "iphone_store/internal/domain/user/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// MockOrderRepository is a mock of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) WithinTx(fn func(tx repository.OrderRepository) error) error {
	args := m.Called(fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	// 事务内直接复用同一个 mock
	return fn(m)
}

func (m *MockOrderRepository) ActiveCartLines(userID uint) ([]cartModel.Cart, error) {
	args := m.Called(userID)
	return args.Get(0).([]cartModel.Cart), args.Error(1)
}

func (m *MockOrderRepository) DeactivateCartLines(lineIDs []uint) (int64, error) {
	args := m.Called(lineIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CreateAddress(address *model.OrderAddress) error {
	args := m.Called(address)
	address.ID = 11
	return args.Error(0)
}

func (m *MockOrderRepository) Create(order *model.Order) error {
	args := m.Called(order)
	order.ID = 42
	return args.Error(0)
}

func (m *MockOrderRepository) CreateDetail(detail *model.OrderDetail) error {
	args := m.Called(detail)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateTotal(orderID uint, total float64) error {
	args := m.Called(orderID, total)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(id uint) (*model.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(userID uint, offset, limit int) ([]model.Order, int64, error) {
	args := m.Called(userID, offset, limit)
	return args.Get(0).([]model.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) ListAll(offset, limit int) ([]model.Order, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]model.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(order *model.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

// MockUserRepository is a mock of user repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *userModel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id uint) (*userModel.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*userModel.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetList(offset, limit int) ([]userModel.User, int64, error) {
	args := m.Called(offset, limit)
	return args.Get(0).([]userModel.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(user *userModel.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) RoleExists(roleID uint) (bool, error) {
	args := m.Called(roleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetRoleByName(name string) (*userModel.Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*userModel.Role), args.Error(1)
}

func testProduct(id uint, price float64) *productModel.Product {
	p := &productModel.Product{ProductName: "iPhone", Sku: "SKU", Price: price}
	p.ID = id
	return p
}

func testCartLine(lineID, productID uint, quantity int, price float64) cartModel.Cart {
	line := cartModel.Cart{
		UserID:    1,
		ProductID: productID,
		Quantity:  quantity,
		Product:   testProduct(productID, price),
	}
	line.ID = lineID
	return line
}

func validInput(method string) CheckoutInput {
	return CheckoutInput{
		Recipient:     "Nguyen Van A",
		PhoneNumber:   "0901234567",
		AddressDetail: "123 Le Loi, Q1",
		City:          "HCM",
		PaymentMethod: method,
	}
}

func existingUser() *userModel.User {
	u := &userModel.User{UserName: "alice", Email: "alice@example.com"}
	u.ID = 1
	return u
}

func TestCreateFromCart(t *testing.T) {
	t.Run("BANK checkout adds fixed shipping to the line total", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		mockUsers.On("GetByID", uint(1)).Return(existingUser(), nil)
		mockRepo.On("WithinTx", mock.Anything).Return(nil)
		mockRepo.On("ActiveCartLines", uint(1)).Return([]cartModel.Cart{
			testCartLine(21, 5, 2, 100),
		}, nil)
		mockRepo.On("CreateAddress", mock.AnythingOfType("*model.OrderAddress")).Return(nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Order")).Return(nil)
		mockRepo.On("CreateDetail", mock.AnythingOfType("*model.OrderDetail")).Return(nil)
		mockRepo.On("UpdateTotal", uint(42), 30200.0).Return(nil)
		mockRepo.On("DeactivateCartLines", []uint{21}).Return(int64(1), nil)

		result, err := service.CreateFromCart(1, validInput("BANK"))

		assert.NoError(t, err)
		assert.Equal(t, uint(42), result.OrderID)
		assert.Equal(t, 30200.0, result.Total)
		assert.NotEmpty(t, result.OrderCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("COD checkout has no shipping fee", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		mockUsers.On("GetByID", uint(1)).Return(existingUser(), nil)
		mockRepo.On("WithinTx", mock.Anything).Return(nil)
		mockRepo.On("ActiveCartLines", uint(1)).Return([]cartModel.Cart{
			testCartLine(21, 5, 1, 100),
		}, nil)
		mockRepo.On("CreateAddress", mock.AnythingOfType("*model.OrderAddress")).Return(nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Order")).Return(nil)
		mockRepo.On("CreateDetail", mock.AnythingOfType("*model.OrderDetail")).Return(nil)
		mockRepo.On("UpdateTotal", uint(42), 100.0).Return(nil)
		mockRepo.On("DeactivateCartLines", []uint{21}).Return(int64(1), nil)

		result, err := service.CreateFromCart(1, validInput("cod"))

		assert.NoError(t, err)
		assert.Equal(t, 100.0, result.Total)
	})

	t.Run("Detail price is frozen from the product at checkout time", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		var captured []*model.OrderDetail
		mockUsers.On("GetByID", uint(1)).Return(existingUser(), nil)
		mockRepo.On("WithinTx", mock.Anything).Return(nil)
		mockRepo.On("ActiveCartLines", uint(1)).Return([]cartModel.Cart{
			testCartLine(21, 5, 3, 250),
		}, nil)
		mockRepo.On("CreateAddress", mock.AnythingOfType("*model.OrderAddress")).Return(nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Order")).Return(nil)
		mockRepo.On("CreateDetail", mock.AnythingOfType("*model.OrderDetail")).
			Run(func(args mock.Arguments) {
				captured = append(captured, args.Get(0).(*model.OrderDetail))
			}).Return(nil)
		mockRepo.On("UpdateTotal", uint(42), 750.0).Return(nil)
		mockRepo.On("DeactivateCartLines", []uint{21}).Return(int64(1), nil)

		_, err := service.CreateFromCart(1, validInput("COD"))

		assert.NoError(t, err)
		assert.Len(t, captured, 1)
		assert.Equal(t, 250.0, captured[0].Price)
		assert.Equal(t, 3, captured[0].Quantity)
	})

	t.Run("Empty cart is rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		mockUsers.On("GetByID", uint(1)).Return(existingUser(), nil)
		mockRepo.On("WithinTx", mock.Anything).Return(nil)
		mockRepo.On("ActiveCartLines", uint(1)).Return([]cartModel.Cart{}, nil)

		_, err := service.CreateFromCart(1, validInput("COD"))

		assert.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("Cart line without product is a data error", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		broken := cartModel.Cart{UserID: 1, ProductID: 9, Quantity: 1, Product: nil}
		mockUsers.On("GetByID", uint(1)).Return(existingUser(), nil)
		mockRepo.On("WithinTx", mock.Anything).Return(nil)
		mockRepo.On("ActiveCartLines", uint(1)).Return([]cartModel.Cart{broken}, nil)

		_, err := service.CreateFromCart(1, validInput("COD"))

		assert.ErrorIs(t, err, ErrBrokenCartLine)
	})

	t.Run("Unknown payment method is rejected before any database work", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		_, err := service.CreateFromCart(1, validInput("PAYPAL"))

		assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
		mockUsers.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("Missing recipient is rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		input := validInput("COD")
		input.Recipient = "   "
		_, err := service.CreateFromCart(1, input)

		assert.ErrorIs(t, err, ErrIncompleteDelivery)
	})

	t.Run("Unknown user cannot check out", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		mockUsers.On("GetByID", uint(7)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.CreateFromCart(7, validInput("COD"))

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Concurrent checkout that finds no lines to consume fails", func(t *testing.T) {
		// 条件停用一行都没命中，说明购物车已被另一笔结账消费
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		mockUsers.On("GetByID", uint(1)).Return(existingUser(), nil)
		mockRepo.On("WithinTx", mock.Anything).Return(nil)
		mockRepo.On("ActiveCartLines", uint(1)).Return([]cartModel.Cart{
			testCartLine(21, 5, 1, 100),
		}, nil)
		mockRepo.On("CreateAddress", mock.AnythingOfType("*model.OrderAddress")).Return(nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Order")).Return(nil)
		mockRepo.On("CreateDetail", mock.AnythingOfType("*model.OrderDetail")).Return(nil)
		mockRepo.On("UpdateTotal", uint(42), 100.0).Return(nil)
		mockRepo.On("DeactivateCartLines", []uint{21}).Return(int64(0), nil)

		result, err := service.CreateFromCart(1, validInput("COD"))

		assert.ErrorIs(t, err, ErrCartConflict)
		assert.Nil(t, result)
	})

	t.Run("Checkout that deactivates fewer lines than it read fails", func(t *testing.T) {
		// 读到两行却只停用到一行：另一笔结账已经消费了其中一行，
		// 本次必须整体失败，不能带着别人订过的行再下一单
		mockRepo := new(MockOrderRepository)
		mockUsers := new(MockUserRepository)
		service := NewOrderService(mockRepo, mockUsers)

		mockUsers.On("GetByID", uint(1)).Return(existingUser(), nil)
		mockRepo.On("WithinTx", mock.Anything).Return(nil)
		mockRepo.On("ActiveCartLines", uint(1)).Return([]cartModel.Cart{
			testCartLine(21, 5, 1, 100),
			testCartLine(22, 6, 2, 200),
		}, nil)
		mockRepo.On("CreateAddress", mock.AnythingOfType("*model.OrderAddress")).Return(nil)
		mockRepo.On("Create", mock.AnythingOfType("*model.Order")).Return(nil)
		mockRepo.On("CreateDetail", mock.AnythingOfType("*model.OrderDetail")).Return(nil)
		mockRepo.On("UpdateTotal", uint(42), 500.0).Return(nil)
		mockRepo.On("DeactivateCartLines", []uint{21, 22}).Return(int64(1), nil)

		result, err := service.CreateFromCart(1, validInput("COD"))

		assert.ErrorIs(t, err, ErrCartConflict)
		assert.Nil(t, result)
	})
}

func pendingOrder(id, userID uint) *model.Order {
	o := &model.Order{
		OrderCode: "ORD202501010101019999",
		UserID:    userID,
		Status:    model.StatusPendingConfirmation,
	}
	o.ID = id
	return o
}

func TestUpdateStatus(t *testing.T) {
	t.Run("Legal forward transition succeeds", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockUserRepository))

		mockRepo.On("GetByID", uint(1)).Return(pendingOrder(1, 2), nil)
		mockRepo.On("UpdateStatus", mock.AnythingOfType("*model.Order")).Return(nil)

		view, err := service.UpdateStatus(1, "CONFIRMED")

		assert.NoError(t, err)
		assert.Equal(t, string(model.StatusConfirmed), view.Status)
	})

	t.Run("Unknown status string is rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockUserRepository))

		_, err := service.UpdateStatus(1, "WAITING_FOR_GODOT")

		assert.ErrorIs(t, err, ErrUnknownStatus)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	})

	t.Run("Backward transition is rejected", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockUserRepository))

		shipped := pendingOrder(1, 2)
		shipped.Status = model.StatusShipping
		mockRepo.On("GetByID", uint(1)).Return(shipped, nil)

		_, err := service.UpdateStatus(1, "CONFIRMED")

		assert.ErrorIs(t, err, ErrIllegalTransition)
		mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything)
	})
}

func TestCancel(t *testing.T) {
	t.Run("Owner cancels a pending order", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockUserRepository))

		mockRepo.On("GetByID", uint(1)).Return(pendingOrder(1, 2), nil)
		mockRepo.On("UpdateStatus", mock.MatchedBy(func(o *model.Order) bool {
			return o.Status == model.StatusCancelled
		})).Return(nil)

		err := service.Cancel(1, 2)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Cannot cancel another user's order", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockUserRepository))

		mockRepo.On("GetByID", uint(1)).Return(pendingOrder(1, 2), nil)

		err := service.Cancel(1, 99)

		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("Delivered order cannot be cancelled", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockUserRepository))

		delivered := pendingOrder(1, 2)
		delivered.Status = model.StatusDelivered
		mockRepo.On("GetByID", uint(1)).Return(delivered, nil)

		err := service.Cancel(1, 2)

		assert.ErrorIs(t, err, ErrAlreadyDelivered)
	})

	t.Run("Cancelled order stays cancelled", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		service := NewOrderService(mockRepo, new(MockUserRepository))

		cancelled := pendingOrder(1, 2)
		cancelled.Status = model.StatusCancelled
		mockRepo.On("GetByID", uint(1)).Return(cancelled, nil)

		err := service.Cancel(1, 2)

		assert.ErrorIs(t, err, ErrIllegalTransition)
	})
}
