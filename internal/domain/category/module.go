package category

import (
	"iphone_store/internal/domain/category/handler"
	"iphone_store/internal/domain/category/repository"
	"iphone_store/internal/domain/category/service"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/internal/pkg/registry"
)

// CategoryModule 分类模块
type CategoryModule struct{}

func init() {
	registry.Register(&CategoryModule{})
}

func (m *CategoryModule) Name() string {
	return "category"
}

func (m *CategoryModule) Priority() int {
	return 10
}

func (m *CategoryModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewCategoryRepository(ctx.DB)
	svc := service.NewCategoryService(repo)
	h := handler.NewCategoryHandler(svc)

	r := ctx.Router
	g := r.Group("/category")
	{
		// 浏览接口公开
		g.GET("", h.List)
		g.GET("/:id", h.Get)

		// 写接口仅管理员
		admin := g.Group("")
		admin.Use(middleware.AuthMiddleware(ctx.Tokens), middleware.AdminMiddleware())
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}

	return nil
}
