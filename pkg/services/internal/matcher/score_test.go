package matcher

import (
	"testing"

	structure "github.com/aems-dev/aems-go/pkg/types/structures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCombiner() *ScoreCombiner {
	return NewScoreCombiner(NewDefaultKeywordDetector())
}

// 이름과 주소가 모두 일치하면 exact로 판정되어야 합니다
func TestScoreCombinerExactMatch(t *testing.T) {
	combiner := newTestCombiner()

	result := combiner.Match(
		"서울시립병원", "서울 중구 세종대로 110",
		"서울시립병원", "서울 중구 세종대로 110",
		"",
	)

	require.NotNil(t, result)
	assert.Equal(t, structure.MatchMethodExact, result.Method)
	assert.Equal(t, 100, result.NameScore)
	assert.Equal(t, 100, result.AddressScore)
	// 0.5*100 + 0.35*100 + 0.15*(10*1.2) = 86.8 -> 87
	assert.Equal(t, 87, result.Confidence)
	assert.NotEmpty(t, result.Details)
}

// 카테고리 보너스가 10을 넘고 점수가 낮으면 keyword로 판정되어야 합니다
func TestScoreCombinerKeywordMethod(t *testing.T) {
	combiner := newTestCombiner()

	result := combiner.Match(
		"시립요양원", "서울 강서구",
		"구립경로당", "부산 해운대구",
		"",
	)

	require.NotNil(t, result)
	assert.Equal(t, structure.MatchMethodKeyword, result.Method)
	// 복지시설 보너스 10*1.1 = 11
	assert.Equal(t, 11, result.KeywordBonus)
	assert.Contains(t, result.Details[0], string(structure.CategoryWelfare))
}

// 세부 분류 힌트의 카테고리가 후보와 일치하면 +5점이 추가되어야 합니다
func TestScoreCombinerSubDivisionBonus(t *testing.T) {
	combiner := newTestCombiner()

	withHint := combiner.Match(
		"중앙초등학교", "서울 노원구",
		"중앙초등학교 병설유치원", "서울 노원구 상계로 3",
		"유치원",
	)
	withoutHint := combiner.Match(
		"중앙초등학교", "서울 노원구",
		"중앙초등학교 병설유치원", "서울 노원구 상계로 3",
		"",
	)

	// 교육기관 10*1.1 = 11, 힌트 일치 시 +5
	assert.Equal(t, 11, withoutHint.KeywordBonus)
	assert.Equal(t, 16, withHint.KeywordBonus)
	assert.GreaterOrEqual(t, withHint.Confidence, withoutHint.Confidence)
}

// 점수 판정 방식과 무관하게 근거 목록은 비어 있으면 안됩니다
func TestScoreCombinerDetailsNeverEmpty(t *testing.T) {
	combiner := newTestCombiner()

	pairs := [][4]string{
		{"서울시립병원", "서울 중구", "서울시립병원", "서울 중구"},
		{"한빛타운", "서울 중구", "무지개아파트", "부산 해운대구"},
		{"", "", "", ""},
	}

	for _, pair := range pairs {
		result := combiner.Match(pair[0], pair[1], pair[2], pair[3], "")
		assert.NotEmpty(t, result.Details, "pair=%v", pair)
	}
}

// 어떤 입력 조합이든 신뢰도와 부분 점수는 [0,100] 범위여야 합니다
func TestScoreCombinerBounds(t *testing.T) {
	combiner := newTestCombiner()

	pairs := [][5]string{
		{"서울구치소", "서울 송파구", "서울구치소 신관", "서울 송파구 문정동 150", "교정시설"},
		{"중앙소방서", "서울 중구", "중앙119안전센터", "서울 중구 태평로 1", "소방서"},
		{"", "", "", "", ""},
		{"!!!", "###", "???", "***", ""},
	}

	for _, pair := range pairs {
		result := combiner.Match(pair[0], pair[1], pair[2], pair[3], pair[4])
		assert.GreaterOrEqual(t, result.Confidence, 0, "pair=%v", pair)
		assert.LessOrEqual(t, result.Confidence, 100, "pair=%v", pair)
		assert.GreaterOrEqual(t, result.NameScore, 0, "pair=%v", pair)
		assert.LessOrEqual(t, result.NameScore, 100, "pair=%v", pair)
		assert.GreaterOrEqual(t, result.AddressScore, 0, "pair=%v", pair)
		assert.LessOrEqual(t, result.AddressScore, 100, "pair=%v", pair)
		assert.GreaterOrEqual(t, result.KeywordBonus, 0, "pair=%v", pair)
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"음수는 0", -10, 0},
		{"0 유지", 0, 0},
		{"반올림", 86.8, 87},
		{"상한 제한", 104.5, 100},
		{"정확히 100", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampScore(tt.in))
		})
	}
}
