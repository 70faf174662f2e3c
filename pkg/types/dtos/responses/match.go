package response

import (
	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// Similarity는 유사도 요청에 대한 응답을 나타냅니다.
type Similarity struct {
	Score int `json:"score"`
}

// Match는 단일 매칭 요청에 대한 응답을 나타냅니다.
type Match struct {
	Confidence int                         `json:"confidence"`
	Rationale  *structure.SimilarityResult `json:"rationale"`
}

// BatchMatch는 배치 매칭 요청에 대한 응답을 나타냅니다.
// 최소 신뢰도를 넘는 후보가 없는 대상은 results에 포함되지 않습니다
type BatchMatch struct {
	TotalTargets   int                                   `json:"totalTargets"`
	MatchedTargets int                                   `json:"matchedTargets"`
	Results        map[string][]structure.MatchCandidate `json:"results"`
}

// EquipmentGroups는 관리번호 그룹핑 요청에 대한 응답을 나타냅니다.
type EquipmentGroups struct {
	TotalGroups int                                     `json:"totalGroups"`
	Groups      map[string][]structure.ManagedEquipment `json:"groups"`
}
