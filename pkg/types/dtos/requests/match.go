package request

import (
	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// NameSimilarityQuery는 기관명 유사도 요청 쿼리를 나타냅니다.
// 빈 값은 엔진에서 빈 문자열로 처리되므로 필수가 아닙니다
type NameSimilarityQuery struct {
	Name1 string `json:"name1" validate:"max=200"`
	Name2 string `json:"name2" validate:"max=200"`
}

// AddressSimilarityQuery는 주소 유사도 요청 쿼리를 나타냅니다.
type AddressSimilarityQuery struct {
	Address1 string `json:"address1" validate:"max=300"`
	Address2 string `json:"address2" validate:"max=300"`
}

// MatchParam는 단일 매칭 요청 구조체입니다
type MatchParam struct {
	TargetName       string `json:"targetName"`
	TargetAddress    string `json:"targetAddress"`
	CandidateName    string `json:"candidateName"`
	CandidateAddress string `json:"candidateAddress"`
	SubDivision      string `json:"subDivision,omitempty"`
}

// BatchMatchParam는 배치 매칭 요청 구조체입니다
type BatchMatchParam struct {
	Targets    []structure.TargetInstitution `json:"targets" validate:"required,min=1"`
	Candidates []structure.EquipmentRecord   `json:"candidates" validate:"required,min=1"`
}

// GroupParam는 관리번호 그룹핑 요청 구조체입니다
type GroupParam struct {
	Records []structure.EquipmentRecord `json:"records" validate:"required,min=1"`
}
