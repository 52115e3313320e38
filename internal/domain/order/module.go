package order

import (
	"iphone_store/internal/domain/order/handler"
	"iphone_store/internal/domain/order/repository"
	"iphone_store/internal/domain/order/service"
	userRepo "iphone_store/internal/domain/user/repository"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/internal/pkg/registry"
)

// OrderModule 订单模块
type OrderModule struct{}

func init() {
	registry.Register(&OrderModule{})
}

func (m *OrderModule) Name() string {
	return "order"
}

func (m *OrderModule) Priority() int {
	return 13
}

func (m *OrderModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewOrderRepository(ctx.DB)
	svc := service.NewOrderService(repo, userRepo.NewUserRepository(ctx.DB))
	h := handler.NewOrderHandler(svc)

	g := ctx.Router.Group("/order")
	g.Use(middleware.AuthMiddleware(ctx.Tokens))
	{
		g.POST("/createFromCart", h.CreateFromCart)
		g.GET("/user", h.ListMine)
		g.GET("/:id", h.Get)
		g.PUT("/cancel/:id", h.Cancel)

		admin := g.Group("")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.GET("/all", h.ListAll)
			admin.PUT("/status/:id", h.UpdateStatus)
		}
	}

	return nil
}
