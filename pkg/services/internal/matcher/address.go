package matcher

import "strings"

// AddressSimilarity는 두 주소의 토큰 중첩 비율을 0~100 점수로 반환합니다
// 토큰은 양방향 부분 문자열 일치를 허용합니다 ("110"은 "1"과도 일치)
// 정규화 후 동일하면 100, 어느 한쪽이 비어 있으면 0을 반환합니다
func AddressSimilarity(addr1, addr2 string) int {
	n1 := NormalizeText(addr1)
	n2 := NormalizeText(addr2)

	if n1 == "" || n2 == "" {
		return 0
	}
	if n1 == n2 {
		return 100
	}

	tokens1 := strings.Fields(n1)
	tokens2 := strings.Fields(n2)
	if len(tokens1) == 0 || len(tokens2) == 0 {
		return 0
	}

	matched := 0
	for _, t1 := range tokens1 {
		for _, t2 := range tokens2 {
			if t1 == t2 || strings.Contains(t1, t2) || strings.Contains(t2, t1) {
				matched++
				break
			}
		}
	}

	maxTokens := len(tokens1)
	if len(tokens2) > maxTokens {
		maxTokens = len(tokens2)
	}

	return clampScore(float64(matched) / float64(maxTokens) * 100)
}
