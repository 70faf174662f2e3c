package matcher

import "strings"

// 완성형 한글 음절 범위 (가 ~ 힣)
const (
	hangulBase = 0xAC00
	hangulLast = 0xD7A3
)

// 초성 19자
var HANGUL_LEADS = []string{
	"ㄱ", "ㄲ", "ㄴ", "ㄷ", "ㄸ", "ㄹ", "ㅁ", "ㅂ", "ㅃ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅉ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

// 중성 21자
var HANGUL_VOWELS = []string{
	"ㅏ", "ㅐ", "ㅑ", "ㅒ", "ㅓ", "ㅔ", "ㅕ", "ㅖ", "ㅗ", "ㅘ",
	"ㅙ", "ㅚ", "ㅛ", "ㅜ", "ㅝ", "ㅞ", "ㅟ", "ㅠ", "ㅡ", "ㅢ", "ㅣ",
}

// 종성 28자 (받침 없음 포함)
var HANGUL_TAILS = []string{
	"", "ㄱ", "ㄲ", "ㄳ", "ㄴ", "ㄵ", "ㄶ", "ㄷ", "ㄹ", "ㄺ",
	"ㄻ", "ㄼ", "ㄽ", "ㄾ", "ㄿ", "ㅀ", "ㅁ", "ㅂ", "ㅄ", "ㅅ",
	"ㅆ", "ㅇ", "ㅈ", "ㅊ", "ㅋ", "ㅌ", "ㅍ", "ㅎ",
}

// DecomposeHangul은 완성형 한글 음절을 초성/중성/종성 자모로 분해합니다
// 한 음절이 자모 2~3개로 풀리므로 편집 거리가 발음 단위의 오타를
// 더 세밀하게 반영합니다. 한글이 아닌 문자는 그대로 통과시킵니다
func DecomposeHangul(text string) string {
	var builder strings.Builder
	for _, r := range text {
		if r < hangulBase || r > hangulLast {
			builder.WriteRune(r)
			continue
		}

		index := int(r - hangulBase)
		lead := index / (21 * 28)
		vowel := (index % (21 * 28)) / 28
		tail := index % 28

		builder.WriteString(HANGUL_LEADS[lead])
		builder.WriteString(HANGUL_VOWELS[vowel])
		builder.WriteString(HANGUL_TAILS[tail])
	}
	return builder.String()
}
