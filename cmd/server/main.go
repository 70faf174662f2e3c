package main

import (
	"log"

	"github.com/aems-dev/aems-go/pkg/configs"
	middleware "github.com/aems-dev/aems-go/pkg/middlewares"
	route "github.com/aems-dev/aems-go/pkg/routes"
	"github.com/aems-dev/aems-go/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 메트릭 초기화
	utils.InitMetrics()

	app := fiber.New(fiber.Config{
		AppName: "AEMS-MATCH-GO Service",
	})

	// 미들웨어 설정
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(middleware.Prometheus())

	// 라우트 설정
	route.SetupRoutes(app)

	// 서버 시작
	port := configs.GetConfig().Server.Port
	log.Fatal(app.Listen(":" + port))
}
