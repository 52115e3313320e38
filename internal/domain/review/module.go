package review

import (
	productRepo "iphone_store/internal/domain/product/repository"
	"iphone_store/internal/domain/review/handler"
	"iphone_store/internal/domain/review/repository"
	"iphone_store/internal/domain/review/service"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/internal/pkg/registry"
)

// ReviewModule 评价模块
type ReviewModule struct{}

func init() {
	registry.Register(&ReviewModule{})
}

func (m *ReviewModule) Name() string {
	return "review"
}

func (m *ReviewModule) Priority() int {
	return 14
}

func (m *ReviewModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewReviewRepository(ctx.DB)
	svc := service.NewReviewService(repo, productRepo.NewProductRepository(ctx.DB))
	h := handler.NewReviewHandler(svc)

	g := ctx.Router.Group("/review")
	{
		// 浏览评价不要求登录
		g.GET("/product/:productId", h.ListByProduct)
		g.GET("/product/:productId/rating", h.Rating)

		authed := g.Group("")
		authed.Use(middleware.AuthMiddleware(ctx.Tokens))
		{
			authed.POST("", h.Create)
			authed.PUT("/:id", h.Update)
			authed.DELETE("/:id", h.Delete)
		}
	}

	return nil
}
