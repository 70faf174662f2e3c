package matcher

import (
	"strings"

	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// KeywordDetector는 기관명에서 기관 카테고리를 감지하는 서비스입니다
// 사전은 생성 시점에 주입되며 이후 절대 변경되지 않습니다
type KeywordDetector struct {
	patterns map[structure.InstitutionCategory]structure.CategoryPattern
	order    []structure.InstitutionCategory
}

// NewKeywordDetector는 새 키워드 감지기를 생성합니다
// order는 키워드 일치 수가 같을 때의 우선순위를 결정합니다
func NewKeywordDetector(
	patterns map[structure.InstitutionCategory]structure.CategoryPattern,
	order []structure.InstitutionCategory,
) *KeywordDetector {
	return &KeywordDetector{patterns: patterns, order: order}
}

// NewDefaultKeywordDetector는 기본 카테고리 사전으로 감지기를 생성합니다
func NewDefaultKeywordDetector() *KeywordDetector {
	return NewKeywordDetector(structure.CATEGORY_PATTERNS, structure.CATEGORY_ORDER)
}

// Pattern은 카테고리의 사전 항목을 반환합니다
func (d *KeywordDetector) Pattern(category structure.InstitutionCategory) (structure.CategoryPattern, bool) {
	pattern, ok := d.patterns[category]
	return pattern, ok
}

// Detect는 텍스트에서 가장 많은 키워드가 일치한 카테고리를 반환합니다
// 이형 표기가 일치하면 대표 키워드를 일치 목록에 기록하며,
// 아무 카테고리도 일치하지 않으면 미분류(가중치 1.0)를 반환합니다
func (d *KeywordDetector) Detect(text string) structure.CategoryDetection {
	normalized := NormalizeText(text)
	best := unknownDetection()
	if normalized == "" {
		return best
	}

	for _, category := range d.order {
		pattern, ok := d.patterns[category]
		if !ok {
			continue
		}

		// 대표 키워드 선언 순서대로 수집하므로 결과가 결정적입니다
		var matched []string
		for _, keyword := range pattern.Keywords {
			hit := strings.Contains(normalized, strings.ToLower(keyword))
			if !hit {
				for _, variant := range pattern.Synonyms[keyword] {
					if strings.Contains(normalized, strings.ToLower(variant)) {
						hit = true
						break
					}
				}
			}
			if hit {
				matched = append(matched, keyword)
			}
		}

		// 동률이면 먼저 선언된 카테고리를 유지합니다
		if len(matched) > len(best.MatchedKeywords) {
			best = structure.CategoryDetection{
				Category:        category,
				MatchedKeywords: matched,
				Weight:          pattern.Weight,
			}
		}
	}

	return best
}

func unknownDetection() structure.CategoryDetection {
	return structure.CategoryDetection{
		Category:        structure.CategoryUnknown,
		MatchedKeywords: []string{},
		Weight:          1.0,
	}
}
