package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressSimilarity(t *testing.T) {
	tests := []struct {
		name  string
		addr1 string
		addr2 string
		want  int
	}{
		{"동일 주소", "서울 중구 세종대로 110", "서울 중구 세종대로 110", 100},
		{"둘 다 빈 주소", "", "", 0},
		{"한쪽만 빈 주소", "서울 중구 세종대로 110", "", 0},
		// 서울/세종대로는 일치, 110은 1을 포함하므로 일치, 중구만 불일치 -> 3/4
		{"부분 일치", "서울 중구 세종대로 110", "서울 종로구 세종대로 1", 75},
		{"시도만 일치", "서울 중구", "서울 강남구", 50},
		{"완전 불일치", "부산 해운대구", "대전 유성구", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddressSimilarity(tt.addr1, tt.addr2))
		})
	}
}

func TestAddressSimilarityBounds(t *testing.T) {
	pairs := [][2]string{
		{"서울 중구 세종대로 110", "서울 중구 세종대로 110-1"},
		{"서울특별시 중구", "서울 중구"},
		{"   ", "서울 중구"},
	}

	for _, pair := range pairs {
		score := AddressSimilarity(pair[0], pair[1])
		assert.GreaterOrEqual(t, score, 0, "pair=%v", pair)
		assert.LessOrEqual(t, score, 100, "pair=%v", pair)
	}
}
