package product

import (
	categoryRepo "iphone_store/internal/domain/category/repository"
	"iphone_store/internal/domain/product/handler"
	"iphone_store/internal/domain/product/repository"
	"iphone_store/internal/domain/product/service"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/internal/pkg/registry"
)

// ProductModule 商品模块
type ProductModule struct{}

func init() {
	registry.Register(&ProductModule{})
}

func (m *ProductModule) Name() string {
	return "product"
}

func (m *ProductModule) Priority() int {
	// 依赖分类模块的数据，但初始化顺序只影响路由注册，排在分类之后即可
	return 11
}

func (m *ProductModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewProductRepository(ctx.DB)
	svc := service.NewProductService(repo, categoryRepo.NewCategoryRepository(ctx.DB))
	h := handler.NewProductHandler(svc)

	r := ctx.Router
	g := r.Group("/product")
	{
		// 浏览接口公开
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.GET("/category/:categoryId", h.ListByCategory)

		// 写接口仅管理员
		admin := g.Group("")
		admin.Use(middleware.AuthMiddleware(ctx.Tokens), middleware.AdminMiddleware())
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
			admin.POST("/:id/images", h.AddImage)
			admin.DELETE("/images/:imageId", h.DeleteImage)
		}
	}

	return nil
}
