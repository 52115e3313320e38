package service

import (
	"errors"
	"strings"

	"iphone_store/internal/domain/category/model"
	"iphone_store/internal/domain/category/repository"

	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameTaken        = errors.New("category name already exists")
	ErrNameRequired     = errors.New("category name is required")
)

// CategoryService 分类服务接口
type CategoryService interface {
	Create(name, description string) (*model.Category, error)
	Get(id uint) (*model.Category, error)
	List(page, limit int) ([]model.Category, int64, error)
	Update(id uint, name, description string) (*model.Category, error)
	Delete(id uint) error
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func (s *categoryService) Create(name, description string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	exists, err := s.repo.NameExists(name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrNameTaken
	}

	category := &model.Category{CategoryName: name, Description: description}
	category.IsActive = true
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) Get(id uint) (*model.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(page, limit int) ([]model.Category, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	return s.repo.GetList((page-1)*limit, limit)
}

func (s *categoryService) Update(id uint, name, description string) (*model.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name != "" && !strings.EqualFold(name, category.CategoryName) {
		exists, err := s.repo.NameExists(name, id)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrNameTaken
		}
		category.CategoryName = name
	}
	if description != "" {
		category.Description = description
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 软删除分类，商品仍保留分类引用
func (s *categoryService) Delete(id uint) error {
	category, err := s.Get(id)
	if err != nil {
		return err
	}

	category.IsActive = false
	return s.repo.Update(category)
}
