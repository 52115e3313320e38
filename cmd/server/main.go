package main

import (
	"log"
	"net/http"
	"time"

	"iphone_store/internal/pkg/config"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/internal/pkg/registry"
	"iphone_store/pkg/database"
	"iphone_store/pkg/logger"
	"iphone_store/pkg/response"
	"iphone_store/pkg/token"

	// 各业务模块通过 init() 自注册
	_ "iphone_store/internal/domain/admin"
	_ "iphone_store/internal/domain/cart"
	_ "iphone_store/internal/domain/category"
	_ "iphone_store/internal/domain/order"
	_ "iphone_store/internal/domain/product"
	_ "iphone_store/internal/domain/review"
	_ "iphone_store/internal/domain/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	cfg := config.GlobalConfig

	logger.Init(cfg.App.Debug)
	defer logger.Sync()

	db := database.InitDatabase()

	tokens := token.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.Expire)*time.Hour)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// panic 兜底，对外只给统一响应包，不泄露堆栈
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Internal server error")
	}))
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "up"}, "")
	})

	if err := registry.InitModules(&registry.ModuleContext{
		DB:     db,
		Router: router,
		Tokens: tokens,
	}); err != nil {
		log.Fatalf("Failed to initialize modules: %v", err)
	}

	addr := ":" + cfg.Server.Port
	log.Printf("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
