package matcher

import (
	structure "github.com/aems-dev/aems-go/pkg/types/structures"
)

// GroupEquipment는 정규화된 (기관명, 주소) 키가 같은 장비 기록을 묶습니다
// 한 설치 장소에 여러 관리번호가 등록된 경우의 중복 제거에 사용하며
// 점수 계산은 하지 않습니다
func GroupEquipment(records []structure.EquipmentRecord) map[string][]structure.ManagedEquipment {
	groups := make(map[string][]structure.ManagedEquipment)
	for _, record := range records {
		key := GroupKey(record.InstitutionName, record.Address)
		groups[key] = append(groups[key], structure.ManagedEquipment{
			ManagementNumber: record.ManagementNumber,
			EquipmentSerials: record.EquipmentSerials,
		})
	}
	return groups
}

// GroupKey는 그룹핑에 사용하는 정규화 복합 키를 생성합니다
func GroupKey(institutionName, address string) string {
	return NormalizeText(institutionName) + "|" + NormalizeText(address)
}
