package matcher

import (
	"sort"
	"sync"

	constants "github.com/aems-dev/aems-go/pkg/types"
	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// BatchMatcher는 대상 기관 목록을 일괄 매칭하는 서비스입니다
// 후보는 대상과 (시도, 구군)이 정확히 같은 지역으로만 제한됩니다
type BatchMatcher struct {
	combiner      *ScoreCombiner
	minConfidence int
	maxResults    int
}

// NewBatchMatcher는 새 배치 매칭기를 생성합니다
func NewBatchMatcher(combiner *ScoreCombiner, minConfidence, maxResults int) *BatchMatcher {
	return &BatchMatcher{
		combiner:      combiner,
		minConfidence: minConfidence,
		maxResults:    maxResults,
	}
}

// Match는 대상 기관별로 같은 지역의 후보를 채점해 상위 결과를 반환합니다
// 최소 신뢰도를 넘는 후보가 하나도 없는 대상은 결과 맵에서 제외됩니다
// 대상 간 채점은 서로 독립이므로 병렬로 수행하고 슬롯 단위로 병합합니다
func (m *BatchMatcher) Match(targets []structure.TargetInstitution, candidates []structure.EquipmentRecord) map[string][]structure.MatchCandidate {
	// 지역별 후보 색인 (입력 순서 유지)
	regionIndex := make(map[string][]structure.EquipmentRecord)
	for _, candidate := range candidates {
		key := regionKey(candidate.Sido, candidate.Gugun)
		regionIndex[key] = append(regionIndex[key], candidate)
	}

	slots := make([][]structure.MatchCandidate, len(targets))

	var wg sync.WaitGroup
	sem := make(chan struct{}, constants.BATCH_MAX_WORKERS)
	for i, target := range targets {
		wg.Add(1)
		sem <- struct{}{}

		go func(index int, target structure.TargetInstitution) {
			defer wg.Done()
			defer func() { <-sem }()

			regionCandidates := regionIndex[regionKey(target.Sido, target.Gugun)]
			slots[index] = m.matchTarget(target, regionCandidates)
		}(i, target)
	}
	wg.Wait()

	results := make(map[string][]structure.MatchCandidate)
	for i, target := range targets {
		if len(slots[i]) > 0 {
			results[target.TargetKey] = slots[i]
		}
	}
	return results
}

// matchTarget은 한 대상 기관에 대해 지역 내 후보를 채점하고 정렬합니다
func (m *BatchMatcher) matchTarget(target structure.TargetInstitution, regionCandidates []structure.EquipmentRecord) []structure.MatchCandidate {
	targetAddress := target.Sido + " " + target.Gugun

	var matched []structure.MatchCandidate
	for _, candidate := range regionCandidates {
		result := m.combiner.Match(
			target.InstitutionName,
			targetAddress,
			candidate.InstitutionName,
			candidate.Address,
			target.SubDivision,
		)
		if result.Confidence < m.minConfidence {
			continue
		}

		matched = append(matched, structure.MatchCandidate{
			ManagementNumber: candidate.ManagementNumber,
			Confidence:       result.Confidence,
			Rationale:        result,
			EquipmentCount:   len(candidate.EquipmentSerials),
		})
	}

	// 동점은 입력 순서를 유지해야 하므로 안정 정렬을 사용합니다
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Confidence > matched[j].Confidence
	})

	if len(matched) > m.maxResults {
		matched = matched[:m.maxResults]
	}
	return matched
}

func regionKey(sido, gugun string) string {
	return NormalizeText(sido) + "|" + NormalizeText(gugun)
}
