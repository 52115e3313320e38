package service

import (
	"errors"
	"fmt"

	"iphone_store/internal/domain/cart/model"
	"iphone_store/internal/domain/cart/repository"
	productRepo "iphone_store/internal/domain/product/repository"

	"gorm.io/gorm"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidQuantity  = errors.New("quantity must be a positive integer")
	ErrNotOwner         = errors.New("cart item belongs to another user")
)

// CartService 购物车服务接口
type CartService interface {
	// Add 加购：同一 (用户, 商品) 合并到一行，数量累加，停用行重新激活
	Add(userID, productID uint, quantity int) (*model.Cart, error)
	GetActive(userID uint) ([]model.Cart, error)
	Get(userID, cartID uint) (*model.Cart, error)
	UpdateQuantity(userID, cartID uint, quantity int) (*model.Cart, error)
	Remove(userID, cartID uint) error
	Clear(userID uint) error
}

type cartService struct {
	repo     repository.CartRepository
	products productRepo.ProductRepository
}

func NewCartService(repo repository.CartRepository, products productRepo.ProductRepository) CartService {
	return &cartService{repo: repo, products: products}
}

func (s *cartService) Add(userID, productID uint, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	if _, err := s.products.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// 查找已有行时把停用行也算上，保证 (user, product) 唯一
	existing, err := s.repo.GetByUserAndProduct(userID, productID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		cart := &model.Cart{
			UserID:    userID,
			ProductID: productID,
			Quantity:  quantity,
		}
		cart.IsActive = true
		cart.CreatedBy = fmt.Sprintf("User_%d", userID)
		if err := s.repo.Create(cart); err != nil {
			return nil, err
		}
		return cart, nil
	}

	// 停用行重新激活，数量在原有基础上累加
	existing.IsActive = true
	existing.Quantity += quantity
	existing.UpdatedBy = fmt.Sprintf("User_%d", userID)

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *cartService) GetActive(userID uint) ([]model.Cart, error) {
	return s.repo.GetActiveByUser(userID)
}

func (s *cartService) Get(userID, cartID uint) (*model.Cart, error) {
	cart, err := s.repo.GetByID(cartID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if cart.UserID != userID {
		return nil, ErrNotOwner
	}
	return cart, nil
}

func (s *cartService) UpdateQuantity(userID, cartID uint, quantity int) (*model.Cart, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	cart, err := s.Get(userID, cartID)
	if err != nil {
		return nil, err
	}

	cart.Quantity = quantity
	cart.UpdatedBy = fmt.Sprintf("User_%d", userID)
	if err := s.repo.Update(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *cartService) Remove(userID, cartID uint) error {
	cart, err := s.Get(userID, cartID)
	if err != nil {
		return err
	}
	return s.repo.Delete(cart)
}

// Clear 清空购物车：停用全部有效行
func (s *cartService) Clear(userID uint) error {
	_, err := s.repo.DeactivateByUser(userID)
	return err
}
