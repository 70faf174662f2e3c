package matcher

import (
	"fmt"
	"math"
	"strings"

	constants "github.com/aems-dev/aems-go/pkg/types"
	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// ScoreCombiner는 이름/주소/키워드 점수를 최종 신뢰도로 결합하는 서비스입니다
type ScoreCombiner struct {
	nameScorer *NameScorer
	detector   *KeywordDetector
}

// NewScoreCombiner는 새 점수 결합기를 생성합니다
func NewScoreCombiner(detector *KeywordDetector) *ScoreCombiner {
	return &ScoreCombiner{
		nameScorer: NewNameScorer(detector),
		detector:   detector,
	}
}

// NameScore는 점수 결합 없이 기관명 유사도만 계산합니다
func (c *ScoreCombiner) NameScore(name1, name2 string) int {
	return c.nameScorer.Score(name1, name2)
}

// Match는 대상 기관과 후보 장비 기록의 매칭 신뢰도와 판정 근거를 계산합니다
// subDivision은 대상 기관의 세부 분류 힌트이며 빈 문자열이면 무시됩니다
func (c *ScoreCombiner) Match(targetName, targetAddress, candidateName, candidateAddress, subDivision string) *structure.SimilarityResult {
	nameScore := c.nameScorer.Score(targetName, candidateName)
	addressScore := AddressSimilarity(targetAddress, candidateAddress)

	targetDet := c.detector.Detect(targetName)
	candidateDet := c.detector.Detect(candidateName)

	keywordBonus := 0.0
	if targetDet.Category != structure.CategoryUnknown && targetDet.Category == candidateDet.Category {
		keywordBonus = 10 * targetDet.Weight
	}
	if subDivision != "" {
		subDet := c.detector.Detect(subDivision)
		if subDet.Category != structure.CategoryUnknown && subDet.Category == candidateDet.Category {
			keywordBonus += 5
		}
	}

	raw := constants.NAME_SCORE_WEIGHT*float64(nameScore) +
		constants.ADDRESS_SCORE_WEIGHT*float64(addressScore) +
		constants.KEYWORD_BONUS_WEIGHT*keywordBonus
	confidence := clampScore(raw)

	method, details := classify(nameScore, addressScore, keywordBonus, candidateDet)

	return &structure.SimilarityResult{
		Confidence:   confidence,
		NameScore:    nameScore,
		AddressScore: addressScore,
		KeywordBonus: int(math.Round(keywordBonus)),
		Method:       method,
		Details:      details,
	}
}

// classify는 점수 조합에 따라 판정 방식과 근거 문구를 결정합니다
// 근거 목록은 절대 비어 있지 않습니다
func classify(nameScore, addressScore int, keywordBonus float64, candidateDet structure.CategoryDetection) (structure.MatchMethod, []string) {
	switch {
	case nameScore == 100 && addressScore == 100:
		return structure.MatchMethodExact,
			[]string{"기관명과 주소가 모두 정확히 일치합니다"}

	case nameScore >= 90 && addressScore >= 80:
		return structure.MatchMethodPartial,
			[]string{fmt.Sprintf("기관명(%d점)과 주소(%d점)가 매우 유사합니다", nameScore, addressScore)}

	case keywordBonus > 10:
		detail := fmt.Sprintf("동일 카테고리(%s) 감지", candidateDet.Category)
		if len(candidateDet.MatchedKeywords) > 0 {
			detail += ": " + strings.Join(candidateDet.MatchedKeywords, ", ")
		}
		return structure.MatchMethodKeyword, []string{detail}

	case nameScore >= 80 || addressScore >= 90:
		return structure.MatchMethodPartial,
			[]string{fmt.Sprintf("기관명(%d점) 또는 주소(%d점)가 부분적으로 일치합니다", nameScore, addressScore)}

	default:
		details := []string{fmt.Sprintf("이름 유사도 %d점, 주소 유사도 %d점", nameScore, addressScore)}
		if keywordBonus > 0 {
			details = append(details, fmt.Sprintf("카테고리 키워드 보너스 %.1f점", keywordBonus))
		}
		return structure.MatchMethodFuzzy, details
	}
}
