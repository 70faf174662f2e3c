package routes

import (
	service "github.com/aems-dev/aems-go/pkg/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes는 애플리케이션의 모든 라우트를 설정합니다
func SetupRoutes(app *fiber.App) {
	// API 라우트 그룹
	api := app.Group("/api/v1")
	services := service.NewServiceContainer()

	// 도메인별 라우트 설정
	SetupMatchRoutes("/match", api, services)
	SetupHealthRoutes(app)

	// Prometheus 메트릭 노출
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
