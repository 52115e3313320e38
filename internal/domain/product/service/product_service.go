package service

import (
	"errors"
	"strings"

	categoryRepo "iphone_store/internal/domain/category/repository"
	"iphone_store/internal/domain/product/model"
	"iphone_store/internal/domain/product/repository"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrSkuExists        = errors.New("sku already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrInvalidPrice     = errors.New("price must be greater than zero")
	ErrImageNotFound    = errors.New("product image not found")
)

// ProductInput 商品创建/更新入参
type ProductInput struct {
	ProductName              string
	Sku                      string
	Price                    float64
	SpecificationDescription string
	Warranty                 string
	ProductType              string
	Color                    string
	Capacity                 string
	ImageURL                 string
	CategoryID               uint
}

// ProductService 商品服务接口
type ProductService interface {
	Create(in ProductInput) (*model.Product, error)
	Get(id uint) (*model.Product, error)
	List(search string, categoryID uint, page, limit int) ([]model.Product, int64, error)
	Update(id uint, in ProductInput) (*model.Product, error)
	Delete(id uint) error
	AddImage(productID uint, imageURL string, sortOrder int) (*model.ProductImage, error)
	DeleteImage(imageID uint) error
}

type productService struct {
	repo       repository.ProductRepository
	categories categoryRepo.CategoryRepository
}

func NewProductService(repo repository.ProductRepository, categories categoryRepo.CategoryRepository) ProductService {
	return &productService{repo: repo, categories: categories}
}

func (s *productService) validate(in ProductInput, excludeID uint) error {
	if in.Price <= 0 {
		return ErrInvalidPrice
	}

	exists, err := s.repo.SkuExists(in.Sku, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return ErrSkuExists
	}

	if _, err := s.categories.GetByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

func (s *productService) Create(in ProductInput) (*model.Product, error) {
	in.Sku = strings.TrimSpace(in.Sku)
	if err := s.validate(in, 0); err != nil {
		return nil, err
	}

	product := &model.Product{
		ProductName:              in.ProductName,
		Sku:                      in.Sku,
		Price:                    in.Price,
		SpecificationDescription: in.SpecificationDescription,
		Warranty:                 in.Warranty,
		ProductType:              in.ProductType,
		Color:                    in.Color,
		Capacity:                 in.Capacity,
		ImageURL:                 in.ImageURL,
		CategoryID:               in.CategoryID,
	}
	product.IsActive = true

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Get(id uint) (*model.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) List(search string, categoryID uint, page, limit int) ([]model.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetList(repository.ListFilter{
		Search:     strings.TrimSpace(search),
		CategoryID: categoryID,
		Offset:     (page - 1) * limit,
		Limit:      limit,
	})
}

func (s *productService) Update(id uint, in ProductInput) (*model.Product, error) {
	product, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	in.Sku = strings.TrimSpace(in.Sku)
	if err := s.validate(in, id); err != nil {
		return nil, err
	}

	product.ProductName = in.ProductName
	product.Sku = in.Sku
	product.Price = in.Price
	product.SpecificationDescription = in.SpecificationDescription
	product.Warranty = in.Warranty
	product.ProductType = in.ProductType
	product.Color = in.Color
	product.Capacity = in.Capacity
	product.ImageURL = in.ImageURL
	product.CategoryID = in.CategoryID

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 软删除，订单明细仍可关联到该商品
func (s *productService) Delete(id uint) error {
	product, err := s.Get(id)
	if err != nil {
		return err
	}

	product.IsActive = false
	return s.repo.Update(product)
}

func (s *productService) AddImage(productID uint, imageURL string, sortOrder int) (*model.ProductImage, error) {
	if _, err := s.Get(productID); err != nil {
		return nil, err
	}

	image := &model.ProductImage{
		ProductID: productID,
		ImageURL:  imageURL,
		SortOrder: sortOrder,
	}
	image.IsActive = true

	if err := s.repo.AddImage(image); err != nil {
		return nil, err
	}
	return image, nil
}

func (s *productService) DeleteImage(imageID uint) error {
	if _, err := s.repo.GetImage(imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return err
	}
	return s.repo.DeleteImage(imageID)
}
