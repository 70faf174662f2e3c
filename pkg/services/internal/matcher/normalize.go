package matcher

import (
	"regexp"
	"sort"
	"strings"

	constants "github.com/aems-dev/aems-go/pkg/types"
	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// 단어 문자, 한글 음절, 한글 자모, 공백 외의 문자를 제거하는 패턴
var stripPattern = regexp.MustCompile(`[^\w가-힣ㄱ-ㅎㅏ-ㅣ\s]`)

// 연속 공백을 단일 공백으로 줄이는 패턴
var spacePattern = regexp.MustCompile(`\s+`)

// NormalizeText는 비교를 위해 문자열을 정규화합니다
// 특수문자 제거, 공백 정리, 소문자 변환을 수행하며 빈 입력은 빈 문자열을 반환합니다
func NormalizeText(text string) string {
	if text == "" {
		return ""
	}

	normalized := stripPattern.ReplaceAllString(text, "")
	normalized = spacePattern.ReplaceAllString(normalized, " ")
	return strings.ToLower(strings.TrimSpace(normalized))
}

// ExtractImportantTerms는 정규화된 텍스트에서 빈도 상위 토큰을 추출합니다
// 한 글자 이하 토큰과 불용어는 제외하고 최대 IMPORTANT_TERM_LIMIT개를
// 빈도 내림차순(동률은 먼저 나온 순서)으로 반환합니다
func ExtractImportantTerms(text string) []string {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, token := range strings.Fields(normalized) {
		if len([]rune(token)) <= 1 || structure.STOP_WORDS[token] {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > constants.IMPORTANT_TERM_LIMIT {
		order = order[:constants.IMPORTANT_TERM_LIMIT]
	}
	return order
}
