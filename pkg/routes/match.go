package routes

import (
	controller "github.com/aems-dev/aems-go/pkg/controllers"
	_interface "github.com/aems-dev/aems-go/pkg/interfaces"
	"github.com/gofiber/fiber/v2"
)

// SetupMatchRoutes는 매칭 관련 라우트를 설정합니다
func SetupMatchRoutes(endpoint string, api fiber.Router, services *_interface.ServiceContainer) {
	// 이미 초기화된 서비스 사용
	api.Get(endpoint+"/similarity/name", controller.NameSimilarity(services.MatcherService))
	api.Get(endpoint+"/similarity/address", controller.AddressSimilarity(services.MatcherService))
	api.Post(endpoint, controller.Match(services.MatcherService))
	api.Post(endpoint+"/batch", controller.BatchMatch(services.MatcherService))
	api.Post(endpoint+"/groups", controller.EquipmentGroups(services.MatcherService))
}
