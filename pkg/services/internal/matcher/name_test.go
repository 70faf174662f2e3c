package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestNameScorer() *NameScorer {
	return NewNameScorer(NewDefaultKeywordDetector())
}

// 정규화 후 동일한 이름은 항상 100점이어야 합니다
func TestNameScorerIdentity(t *testing.T) {
	scorer := newTestNameScorer()

	names := []string{
		"서울시립병원",
		"중앙소방서",
		"상계2동 행정복지센터",
		"Seoul Medical Center",
	}

	for _, name := range names {
		assert.Equal(t, 100, scorer.Score(name, name), "name=%q", name)
	}
}

func TestNameScorerNormalizedIdentity(t *testing.T) {
	scorer := newTestNameScorer()

	// 특수문자와 앞뒤 공백 차이는 정규화로 흡수됩니다
	assert.Equal(t, 100, scorer.Score("서울시립병원!!", "  서울시립병원  "))
}

// 한쪽이 다른 쪽을 포함하면 최소 85점이어야 합니다
func TestNameScorerContainment(t *testing.T) {
	scorer := newTestNameScorer()

	tests := []struct {
		name  string
		name1 string
		name2 string
	}{
		{"카테고리 없는 포함", "한빛타운", "한빛타운 별동"},
		{"카테고리 있는 포함", "서울시립병원", "서울시립병원 본관"},
		{"역방향 포함", "수서구치소 신관", "수서구치소"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scorer.Score(tt.name1, tt.name2)
			assert.GreaterOrEqual(t, score, 85)
			assert.LessOrEqual(t, score, 100)
		})
	}
}

// 키워드 보너스가 합산 점수를 100점 위로 밀어도 반환값은 100을 넘으면 안됩니다
func TestNameScorerClampedAt100(t *testing.T) {
	scorer := newTestNameScorer()

	// 포함 85점 + 교정시설 보너스 15*1.3 = 104.5점 -> 100점으로 제한
	score := scorer.Score("서울구치소", "서울구치소 신관")

	assert.Equal(t, 100, score)
}

// 소방서와 119안전센터는 이형 표기 치환으로 같은 이름이 되어야 합니다
func TestNameScorerSynonymRewrite(t *testing.T) {
	scorer := newTestNameScorer()

	score := scorer.Score("중앙소방서", "중앙119안전센터")

	// 치환 후 동일(80점) + 응급서비스 보너스 15*1.3
	assert.GreaterOrEqual(t, score, 80)
	assert.LessOrEqual(t, score, 100)
}

func TestNameScorerEmptyInput(t *testing.T) {
	scorer := newTestNameScorer()

	assert.Equal(t, 0, scorer.Score("", ""))
	assert.Equal(t, 0, scorer.Score("서울시립병원", ""))
	assert.Equal(t, 0, scorer.Score("", "서울시립병원"))
}

// 어떤 입력이든 점수는 [0,100] 범위여야 합니다
func TestNameScorerBounds(t *testing.T) {
	scorer := newTestNameScorer()

	pairs := [][2]string{
		{"서울시립병원", "부산백병원"},
		{"중앙소방서", "강남구보건소"},
		{"한빛타운", "무지개아파트"},
		{"수서구치소", "안양교도소"},
		{"!!!", "###"},
		{"1", "2"},
	}

	for _, pair := range pairs {
		score := scorer.Score(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0, "pair=%v", pair)
		assert.LessOrEqual(t, score, 100, "pair=%v", pair)
	}
}

// 이 구현의 이름 점수는 인자 순서와 무관합니다
func TestNameScorerSymmetric(t *testing.T) {
	scorer := newTestNameScorer()

	pairs := [][2]string{
		{"서울시립병원", "서울시립병원 본관"},
		{"중앙소방서", "중앙119안전센터"},
		{"한빛타운", "무지개아파트"},
	}

	for _, pair := range pairs {
		assert.Equal(t, scorer.Score(pair[0], pair[1]), scorer.Score(pair[1], pair[0]),
			"pair=%v", pair)
	}
}

func TestTermOverlapScore(t *testing.T) {
	tests := []struct {
		name   string
		terms1 []string
		terms2 []string
		want   float64
	}{
		{"둘 다 빈 목록", nil, nil, 0},
		{"완전 일치", []string{"서울", "병원"}, []string{"서울", "병원"}, 30},
		{"절반 일치", []string{"서울", "병원"}, []string{"서울", "학교"}, 15},
		{"불일치", []string{"서울"}, []string{"부산"}, 0},
		{"길이 차이는 큰 쪽 기준", []string{"서울"}, []string{"서울", "중구", "병원"}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, termOverlapScore(tt.terms1, tt.terms2), 0.0001)
		})
	}
}
