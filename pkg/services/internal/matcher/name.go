package matcher

import (
	"math"
	"sort"
	"strings"

	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// NameScorer는 기관명 유사도를 계산하는 서비스입니다
type NameScorer struct {
	detector *KeywordDetector
}

// NewNameScorer는 새 기관명 유사도 계산기를 생성합니다
func NewNameScorer(detector *KeywordDetector) *NameScorer {
	return &NameScorer{detector: detector}
}

// Score는 두 기관명의 유사도를 0~100 점수로 반환합니다
// 완전 일치 -> 포함 관계 -> 이형 표기 치환 비교 -> 자모 편집 거리 순으로
// 판정하며, 동일 카테고리 키워드 보너스는 각 단계 점수에 가산됩니다
func (s *NameScorer) Score(name1, name2 string) int {
	n1 := NormalizeText(name1)
	n2 := NormalizeText(name2)

	// 빈 문자열은 모든 문자열에 포함되므로 포함 검사 전에 걸러냅니다
	if n1 == "" || n2 == "" {
		return 0
	}
	if n1 == n2 {
		return 100
	}

	det1 := s.detector.Detect(n1)
	det2 := s.detector.Detect(n2)

	sameCategory := det1.Category != structure.CategoryUnknown && det1.Category == det2.Category
	keywordBonus := 0.0
	if sameCategory {
		keywordBonus = 15 * det1.Weight
	}

	termScore := termOverlapScore(ExtractImportantTerms(n1), ExtractImportantTerms(n2))

	// 한쪽 이름이 다른 쪽을 통째로 포함하는 경우
	if strings.Contains(n1, n2) || strings.Contains(n2, n1) {
		return clampScore(85 + keywordBonus)
	}

	// 이형 표기를 대표 키워드로 치환한 뒤 다시 비교
	if sameCategory {
		r1 := s.rewriteSynonyms(n1, det1.Category)
		r2 := s.rewriteSynonyms(n2, det1.Category)
		if r1 == r2 {
			return clampScore(80 + keywordBonus)
		}
		if strings.Contains(r1, r2) || strings.Contains(r2, r1) {
			return clampScore(75 + keywordBonus)
		}
	}

	// 자모 단위 편집 거리 기반 점수
	d1 := DecomposeHangul(n1)
	d2 := DecomposeHangul(n2)
	base := 0.0
	maxLen := len([]rune(d1))
	if l := len([]rune(d2)); l > maxLen {
		maxLen = l
	}
	if maxLen > 0 {
		distance := EditDistance(d1, d2)
		base = (1 - float64(distance)/float64(maxLen)) * 60
	}

	return clampScore(base + termScore + keywordBonus)
}

// rewriteSynonyms는 카테고리의 이형 표기를 모두 대표 키워드로 치환합니다
// 긴 표기부터 치환하여 부분 문자열 중복 치환을 방지합니다
func (s *NameScorer) rewriteSynonyms(text string, category structure.InstitutionCategory) string {
	pattern, ok := s.detector.Pattern(category)
	if !ok {
		return text
	}

	rewritten := text
	for _, keyword := range pattern.Keywords {
		variants := append([]string(nil), pattern.Synonyms[keyword]...)
		sort.Slice(variants, func(i, j int) bool {
			return len(variants[i]) > len(variants[j])
		})
		for _, variant := range variants {
			rewritten = strings.ReplaceAll(rewritten, strings.ToLower(variant), keyword)
		}
	}
	return rewritten
}

// termOverlapScore는 중요 단어 교집합 비율을 0~30 점수로 환산합니다
func termOverlapScore(terms1, terms2 []string) float64 {
	maxTerms := len(terms1)
	if len(terms2) > maxTerms {
		maxTerms = len(terms2)
	}
	if maxTerms == 0 {
		return 0
	}

	set := make(map[string]bool, len(terms1))
	for _, term := range terms1 {
		set[term] = true
	}
	shared := 0
	for _, term := range terms2 {
		if set[term] {
			shared++
		}
	}

	return float64(shared) / float64(maxTerms) * 30
}

// clampScore는 실수 점수를 [0,100] 범위의 정수로 반올림합니다
// 키워드 보너스가 합산 점수를 100점 위로 밀어올릴 수 있으므로
// 반환 전 반드시 상한을 적용해야 합니다
func clampScore(score float64) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return int(math.Round(score))
}
