package _interface

import (
	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// MatcherService는 기관 매칭 서비스 인터페이스입니다
type MatcherService interface {
	// NameSimilarity는 두 기관명의 유사도를 0~100 점수로 반환합니다
	NameSimilarity(name1, name2 string) int

	// AddressSimilarity는 두 주소의 유사도를 0~100 점수로 반환합니다
	AddressSimilarity(addr1, addr2 string) int

	// Match는 단일 대상-후보 쌍의 매칭 신뢰도와 판정 근거를 계산합니다
	Match(targetName, targetAddress, candidateName, candidateAddress, subDivision string) *structure.SimilarityResult

	// BatchMatch는 대상 기관 목록을 같은 행정구역 후보로만 일괄 매칭합니다
	BatchMatch(targets []structure.TargetInstitution, candidates []structure.EquipmentRecord) map[string][]structure.MatchCandidate

	// GroupEquipment는 동일 설치 장소의 장비 기록을 관리번호 단위로 묶습니다
	GroupEquipment(records []structure.EquipmentRecord) map[string][]structure.ManagedEquipment
}
