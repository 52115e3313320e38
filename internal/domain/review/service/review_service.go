package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	productRepo "iphone_store/internal/domain/product/repository"
	"iphone_store/internal/domain/review/model"
	"iphone_store/internal/domain/review/repository"

	"gorm.io/gorm"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrProductNotFound = errors.New("product not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotOwner        = errors.New("review belongs to another user")
)

// ReviewView 评价展示模型
type ReviewView struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"productId"`
	UserID    uint      `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProductRatingView 商品评分汇总
type ProductRatingView struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ReviewService 评价服务接口
type ReviewService interface {
	Create(userID, productID uint, rating int, comment string) (*ReviewView, error)
	ListByProduct(productID uint, page, limit int) ([]ReviewView, int64, error)
	Rating(productID uint) (*ProductRatingView, error)
	// Update 只有作者本人可改
	Update(reviewID, userID uint, rating int, comment string) (*ReviewView, error)
	// Delete 作者本人或管理员可删
	Delete(reviewID, userID uint, isAdmin bool) error
}

type reviewService struct {
	repo     repository.ReviewRepository
	products productRepo.ProductRepository
}

func NewReviewService(repo repository.ReviewRepository, products productRepo.ProductRepository) ReviewService {
	return &reviewService{repo: repo, products: products}
}

func toReviewView(r *model.Review) ReviewView {
	view := ReviewView{
		ID:        r.ID,
		ProductID: r.ProductID,
		UserID:    r.UserID,
		UserName:  "N/A",
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		view.UserName = r.User.UserName
	}
	return view
}

func (s *reviewService) Create(userID, productID uint, rating int, comment string) (*ReviewView, error) {
	if rating < model.RatingMin || rating > model.RatingMax {
		return nil, ErrInvalidRating
	}

	if _, err := s.products.GetByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
	}
	review.IsActive = true
	review.CreatedBy = fmt.Sprintf("User_%d", userID)

	if err := s.repo.Create(review); err != nil {
		return nil, err
	}

	view := toReviewView(review)
	return &view, nil
}

func (s *reviewService) ListByProduct(productID uint, page, limit int) ([]ReviewView, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	reviews, total, err := s.repo.ListByProduct(productID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	views := make([]ReviewView, 0, len(reviews))
	for i := range reviews {
		views = append(views, toReviewView(&reviews[i]))
	}
	return views, total, nil
}

func (s *reviewService) Rating(productID uint) (*ProductRatingView, error) {
	avg, count, err := s.repo.AverageRating(productID)
	if err != nil {
		return nil, err
	}
	return &ProductRatingView{Average: avg, Count: count}, nil
}

func (s *reviewService) Update(reviewID, userID uint, rating int, comment string) (*ReviewView, error) {
	if rating < model.RatingMin || rating > model.RatingMax {
		return nil, ErrInvalidRating
	}

	review, err := s.repo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, ErrNotOwner
	}

	review.Rating = rating
	review.Comment = strings.TrimSpace(comment)
	review.UpdatedBy = fmt.Sprintf("User_%d", userID)
	if err := s.repo.Update(review); err != nil {
		return nil, err
	}

	view := toReviewView(review)
	return &view, nil
}

func (s *reviewService) Delete(reviewID, userID uint, isAdmin bool) error {
	review, err := s.repo.GetByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}

	if !isAdmin && review.UserID != userID {
		return ErrNotOwner
	}

	updatedBy := fmt.Sprintf("User_%d", userID)
	if isAdmin {
		updatedBy = "Admin"
	}
	return s.repo.Deactivate(reviewID, updatedBy)
}
