package matcher

import (
	"fmt"
	"testing"

	structure "github.com/aems-dev/aems-go/pkg/types/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBatchMatcher(minConfidence, maxResults int) *BatchMatcher {
	return NewBatchMatcher(newTestCombiner(), minConfidence, maxResults)
}

// 후보는 대상과 같은 (시도, 구군) 지역으로만 제한되어야 합니다
func TestBatchMatcherRegionIsolation(t *testing.T) {
	batcher := newTestBatchMatcher(50, 10)

	targets := []structure.TargetInstitution{
		{TargetKey: "T1", InstitutionName: "서울시립병원", Sido: "서울", Gugun: "중구"},
	}
	candidates := []structure.EquipmentRecord{
		{
			ManagementNumber: "MGMT-001",
			InstitutionName:  "서울시립병원",
			Sido:             "서울",
			Gugun:            "중구",
			Address:          "서울 중구 세종대로 110",
			EquipmentSerials: []string{"AED-100", "AED-101"},
		},
		{
			ManagementNumber: "MGMT-002",
			InstitutionName:  "서울시립병원",
			Sido:             "서울",
			Gugun:            "강남구",
			Address:          "서울 강남구 테헤란로 5",
			EquipmentSerials: []string{"AED-200"},
		},
	}

	results := batcher.Match(targets, candidates)

	require.Contains(t, results, "T1")
	require.Len(t, results["T1"], 1)
	assert.Equal(t, "MGMT-001", results["T1"][0].ManagementNumber)
	assert.Equal(t, 2, results["T1"][0].EquipmentCount)
	assert.NotNil(t, results["T1"][0].Rationale)
}

// 결과는 최대 개수로 잘리고 신뢰도 내림차순이어야 합니다
// 동점은 입력 순서를 유지해야 합니다
func TestBatchMatcherMaxResultsAndOrdering(t *testing.T) {
	batcher := newTestBatchMatcher(50, 10)

	targets := []structure.TargetInstitution{
		{TargetKey: "T1", InstitutionName: "서울시립병원", Sido: "서울", Gugun: "중구"},
	}

	var candidates []structure.EquipmentRecord
	for i := 0; i < 15; i++ {
		candidates = append(candidates, structure.EquipmentRecord{
			ManagementNumber: fmt.Sprintf("MGMT-%03d", i),
			InstitutionName:  "서울시립병원",
			Sido:             "서울",
			Gugun:            "중구",
			Address:          "서울 중구 세종대로 110",
			EquipmentSerials: []string{fmt.Sprintf("AED-%03d", i)},
		})
	}

	results := batcher.Match(targets, candidates)

	require.Contains(t, results, "T1")
	matched := results["T1"]
	require.Len(t, matched, 10)

	for i := 0; i < len(matched); i++ {
		if i > 0 {
			assert.GreaterOrEqual(t, matched[i-1].Confidence, matched[i].Confidence)
		}
		// 전원 동점이므로 입력 순서 그대로 앞 10개가 남아야 합니다
		assert.Equal(t, fmt.Sprintf("MGMT-%03d", i), matched[i].ManagementNumber)
	}
}

// 최소 신뢰도를 넘는 후보가 없는 대상은 결과 맵에 키가 없어야 합니다
func TestBatchMatcherOmitsBelowFloor(t *testing.T) {
	batcher := newTestBatchMatcher(50, 10)

	targets := []structure.TargetInstitution{
		{TargetKey: "T1", InstitutionName: "한빛타운", Sido: "서울", Gugun: "중구"},
		{TargetKey: "T2", InstitutionName: "서울시립병원", Sido: "서울", Gugun: "중구"},
	}
	candidates := []structure.EquipmentRecord{
		{
			ManagementNumber: "MGMT-001",
			InstitutionName:  "무지개아파트",
			Sido:             "서울",
			Gugun:            "중구",
			Address:          "서울 중구 을지로 12",
			EquipmentSerials: []string{"AED-001"},
		},
		{
			ManagementNumber: "MGMT-002",
			InstitutionName:  "서울시립병원",
			Sido:             "서울",
			Gugun:            "중구",
			Address:          "서울 중구 세종대로 110",
			EquipmentSerials: []string{"AED-002"},
		},
	}

	results := batcher.Match(targets, candidates)

	assert.NotContains(t, results, "T1")
	assert.Contains(t, results, "T2")
}

// 후보가 전혀 없는 지역의 대상도 결과 맵에서 제외되어야 합니다
func TestBatchMatcherEmptyRegion(t *testing.T) {
	batcher := newTestBatchMatcher(50, 10)

	targets := []structure.TargetInstitution{
		{TargetKey: "T1", InstitutionName: "서울시립병원", Sido: "제주", Gugun: "서귀포시"},
	}
	candidates := []structure.EquipmentRecord{
		{
			ManagementNumber: "MGMT-001",
			InstitutionName:  "서울시립병원",
			Sido:             "서울",
			Gugun:            "중구",
			Address:          "서울 중구 세종대로 110",
			EquipmentSerials: []string{"AED-001"},
		},
	}

	results := batcher.Match(targets, candidates)

	assert.Empty(t, results)
}

// 대상이 많아도 병렬 채점 결과는 순차 채점과 같아야 합니다
func TestBatchMatcherManyTargets(t *testing.T) {
	batcher := newTestBatchMatcher(50, 10)

	var targets []structure.TargetInstitution
	for i := 0; i < 40; i++ {
		targets = append(targets, structure.TargetInstitution{
			TargetKey:       fmt.Sprintf("T%02d", i),
			InstitutionName: "서울시립병원",
			Sido:            "서울",
			Gugun:           "중구",
		})
	}
	candidates := []structure.EquipmentRecord{
		{
			ManagementNumber: "MGMT-001",
			InstitutionName:  "서울시립병원",
			Sido:             "서울",
			Gugun:            "중구",
			Address:          "서울 중구 세종대로 110",
			EquipmentSerials: []string{"AED-001"},
		},
	}

	results := batcher.Match(targets, candidates)

	require.Len(t, results, 40)
	for _, target := range targets {
		require.Contains(t, results, target.TargetKey)
		assert.Equal(t, "MGMT-001", results[target.TargetKey][0].ManagementNumber)
	}
}
