package cart

import (
	"iphone_store/internal/domain/cart/handler"
	"iphone_store/internal/domain/cart/repository"
	"iphone_store/internal/domain/cart/service"
	productRepo "iphone_store/internal/domain/product/repository"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/internal/pkg/registry"
)

// CartModule 购物车模块
type CartModule struct{}

func init() {
	registry.Register(&CartModule{})
}

func (m *CartModule) Name() string {
	return "cart"
}

func (m *CartModule) Priority() int {
	return 12
}

func (m *CartModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewCartRepository(ctx.DB)
	svc := service.NewCartService(repo, productRepo.NewProductRepository(ctx.DB))
	h := handler.NewCartHandler(svc)

	g := ctx.Router.Group("/cart")
	g.Use(middleware.AuthMiddleware(ctx.Tokens))
	{
		g.POST("", h.Add)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.DELETE("/clear", h.Clear)
	}

	return nil
}
