package structure

// MatchMethod는 매칭 판정 방식을 나타냅니다
type MatchMethod string

const (
	MatchMethodExact   MatchMethod = "exact"
	MatchMethodPartial MatchMethod = "partial"
	MatchMethodFuzzy   MatchMethod = "fuzzy"
	MatchMethodKeyword MatchMethod = "keyword"
)

// TargetInstitution은 매칭 대상이 되는 설치의무기관 정보입니다
type TargetInstitution struct {
	TargetKey       string `json:"targetKey"`
	InstitutionName string `json:"institutionName"`
	Sido            string `json:"sido"`
	Gugun           string `json:"gugun"`
	SubDivision     string `json:"subDivision,omitempty"`
}

// EquipmentRecord는 매칭 후보가 되는 장비 등록 정보입니다
// ManagementNumber는 한 설치 장소의 여러 장비가 공유할 수 있습니다
type EquipmentRecord struct {
	ManagementNumber string   `json:"managementNumber"`
	InstitutionName  string   `json:"institutionName"`
	Sido             string   `json:"sido"`
	Gugun            string   `json:"gugun"`
	Address          string   `json:"address"`
	EquipmentSerials []string `json:"equipmentSerials"`
}

// CategoryDetection은 기관명에서 감지된 카테고리 정보입니다
// 스코어링 호출마다 새로 계산되며 캐싱되지 않습니다
type CategoryDetection struct {
	Category        InstitutionCategory `json:"category"`
	MatchedKeywords []string            `json:"matchedKeywords"`
	Weight          float64             `json:"weight"`
}

// SimilarityResult는 단일 대상-후보 쌍의 매칭 점수와 판정 근거입니다
type SimilarityResult struct {
	Confidence   int         `json:"confidence"`
	NameScore    int         `json:"nameScore"`
	AddressScore int         `json:"addressScore"`
	KeywordBonus int         `json:"keywordBonus"`
	Method       MatchMethod `json:"method"`
	Details      []string    `json:"details"`
}

// MatchCandidate는 배치 매칭 결과에서 하나의 후보 항목입니다
type MatchCandidate struct {
	ManagementNumber string            `json:"managementNumber"`
	Confidence       int               `json:"confidence"`
	Rationale        *SimilarityResult `json:"rationale"`
	EquipmentCount   int               `json:"equipmentCount"`
}

// ManagedEquipment는 관리번호 그룹핑 결과의 단일 항목입니다
type ManagedEquipment struct {
	ManagementNumber string   `json:"managementNumber"`
	EquipmentSerials []string `json:"equipmentSerials"`
}
