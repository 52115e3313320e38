package admin

import (
	"iphone_store/internal/domain/admin/handler"
	"iphone_store/internal/domain/admin/repository"
	"iphone_store/internal/domain/admin/service"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/internal/pkg/registry"
)

// AdminModule 后台模块
type AdminModule struct{}

func init() {
	registry.Register(&AdminModule{})
}

func (m *AdminModule) Name() string {
	return "admin"
}

func (m *AdminModule) Priority() int {
	return 20
}

func (m *AdminModule) Init(ctx *registry.ModuleContext) error {
	repo := repository.NewAdminRepository(ctx.DB)
	svc := service.NewAdminService(repo)
	h := handler.NewAdminHandler(svc)

	g := ctx.Router.Group("/admin")
	g.Use(middleware.AuthMiddleware(ctx.Tokens), middleware.AdminMiddleware())
	{
		g.GET("/statistics", h.Statistics)
		g.GET("/orders/recent", h.RecentOrders)
	}

	return nil
}
