package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"빈 문자열", "", ""},
		{"공백만", "   \t\n  ", ""},
		{"특수문자 제거", "서울시립병원(본관)", "서울시립병원본관"},
		{"연속 공백 축소", "서울  중구   세종대로", "서울 중구 세종대로"},
		{"앞뒤 공백 제거", "  중앙소방서  ", "중앙소방서"},
		{"영문 소문자 변환", "Seoul Medical Center", "seoul medical center"},
		{"한글 자모 유지", "ㄱㅏ나다", "ㄱㅏ나다"},
		{"숫자와 하이픈", "119안전센터-1", "119안전센터1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestExtractImportantTerms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"빈 입력", "", nil},
		{"한 글자 토큰 제외", "서울 시 병원", []string{"서울", "병원"}},
		{"불용어 제외", "서울 및 병원", []string{"서울", "병원"}},
		{
			"빈도 내림차순, 동률은 등장 순서",
			"서울 병원 서울 응급 의료센터",
			[]string{"서울", "병원", "응급", "의료센터"},
		},
		{
			"최대 5개 제한",
			"하나 둘셋 넷다섯 여섯일곱 여덟아홉 열하나 열둘",
			[]string{"하나", "둘셋", "넷다섯", "여섯일곱", "여덟아홉"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractImportantTerms(tt.in))
		})
	}
}
