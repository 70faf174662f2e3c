package controller

import (
	"fmt"

	_interface "github.com/aems-dev/aems-go/pkg/interfaces"
	requestDto "github.com/aems-dev/aems-go/pkg/types/dtos/requests"
	responseDto "github.com/aems-dev/aems-go/pkg/types/dtos/responses"
	"github.com/aems-dev/aems-go/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// NameSimilarity는 기관명 유사도 요청을 처리하는 핸들러입니다
func NameSimilarity(matcherService _interface.MatcherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		queries := c.Queries()
		var req requestDto.NameSimilarityQuery
		if err := utils.ParseAndValidate(queries, &req); err != nil {
			return err
		}

		score := matcherService.NameSimilarity(req.Name1, req.Name2)
		return c.JSON(responseDto.Similarity{Score: score})
	}
}

// AddressSimilarity는 주소 유사도 요청을 처리하는 핸들러입니다
func AddressSimilarity(matcherService _interface.MatcherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		queries := c.Queries()
		var req requestDto.AddressSimilarityQuery
		if err := utils.ParseAndValidate(queries, &req); err != nil {
			return err
		}

		score := matcherService.AddressSimilarity(req.Address1, req.Address2)
		return c.JSON(responseDto.Similarity{Score: score})
	}
}

// Match는 단일 대상-후보 매칭 요청을 처리하는 핸들러입니다
// 빈 텍스트 필드는 엔진이 빈 문자열로 처리하므로 여기서 거부하지 않습니다
func Match(matcherService _interface.MatcherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.MatchParam
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "요청 데이터 파싱 실패: " + err.Error(),
			})
		}

		result := matcherService.Match(
			req.TargetName,
			req.TargetAddress,
			req.CandidateName,
			req.CandidateAddress,
			req.SubDivision,
		)

		return c.JSON(responseDto.Match{
			Confidence: result.Confidence,
			Rationale:  result,
		})
	}
}

// BatchMatch는 배치 매칭 요청을 처리하는 핸들러입니다
// 식별자가 없는 레코드는 호출자 계약 위반이므로 400으로 거부합니다.
// 최소 신뢰도를 넘는 후보가 없는 대상은 results에 키가 생기지 않으며
// matchedTargets로 누락 수를 확인할 수 있습니다
func BatchMatch(matcherService _interface.MatcherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.BatchMatchParam
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "요청 데이터 파싱 실패: " + err.Error(),
			})
		}

		validate := utils.NewValidator()
		if errors := validate.Validate(&req); errors.HasErrors() {
			return fiber.NewError(fiber.StatusBadRequest, errors.Error())
		}

		for i, target := range req.Targets {
			if target.TargetKey == "" {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("targets[%d]: targetKey는 필수 항목입니다", i))
			}
		}
		for i, candidate := range req.Candidates {
			if candidate.ManagementNumber == "" {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("candidates[%d]: managementNumber는 필수 항목입니다", i))
			}
		}

		results := matcherService.BatchMatch(req.Targets, req.Candidates)

		return c.JSON(responseDto.BatchMatch{
			TotalTargets:   len(req.Targets),
			MatchedTargets: len(results),
			Results:        results,
		})
	}
}

// EquipmentGroups는 관리번호 그룹핑 요청을 처리하는 핸들러입니다
func EquipmentGroups(matcherService _interface.MatcherService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req requestDto.GroupParam
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "요청 데이터 파싱 실패: " + err.Error(),
			})
		}

		validate := utils.NewValidator()
		if errors := validate.Validate(&req); errors.HasErrors() {
			return fiber.NewError(fiber.StatusBadRequest, errors.Error())
		}

		groups := matcherService.GroupEquipment(req.Records)

		return c.JSON(responseDto.EquipmentGroups{
			TotalGroups: len(groups),
			Groups:      groups,
		})
	}
}
