package structure

// InstitutionCategory는 기관 유형을 나타내는 닫힌 열거형입니다
type InstitutionCategory string

const (
	CategoryMedical      InstitutionCategory = "의료기관"
	CategoryCorrectional InstitutionCategory = "교정시설"
	CategoryPublicOffice InstitutionCategory = "공공기관"
	CategoryEmergency    InstitutionCategory = "응급서비스"
	CategoryEducation    InstitutionCategory = "교육기관"
	CategoryBusiness     InstitutionCategory = "사업장"
	CategoryResidential  InstitutionCategory = "공동주택"
	CategoryTransit      InstitutionCategory = "교통시설"
	CategoryWelfare      InstitutionCategory = "복지시설"
	CategoryUnknown      InstitutionCategory = "미분류"
)

// CategoryPattern은 카테고리별 키워드 사전 항목입니다
// Synonyms는 대표 키워드 -> 이형 표기(축약어, 별칭, 외래 표기) 목록입니다
type CategoryPattern struct {
	Keywords []string
	Weight   float64
	Synonyms map[string][]string
}

// CATEGORY_ORDER는 카테고리 선언 순서입니다
// 키워드 일치 수가 같을 때 이 순서가 앞선 카테고리를 선택합니다
var CATEGORY_ORDER = []InstitutionCategory{
	CategoryMedical,
	CategoryCorrectional,
	CategoryPublicOffice,
	CategoryEmergency,
	CategoryEducation,
	CategoryBusiness,
	CategoryResidential,
	CategoryTransit,
	CategoryWelfare,
}

// CATEGORY_PATTERNS는 기관 카테고리별 키워드 사전입니다
// 가중치는 해당 카테고리 어휘가 매칭에 얼마나 결정적인지를 반영합니다 (1.0~1.3)
// 프로세스 시작 후 절대 수정하면 안됩니다
var CATEGORY_PATTERNS = map[InstitutionCategory]CategoryPattern{
	CategoryMedical: {
		Keywords: []string{"병원", "의원", "보건소", "의료원", "치과", "한의원", "요양병원"},
		Weight:   1.2,
		Synonyms: map[string][]string{
			"병원":  {"메디컬센터", "hospital"},
			"보건소": {"보건지소", "보건진료소"},
		},
	},
	CategoryCorrectional: {
		Keywords: []string{"교도소", "구치소", "소년원", "교정청"},
		Weight:   1.3,
		Synonyms: map[string][]string{
			"교도소": {"교정시설"},
		},
	},
	CategoryPublicOffice: {
		Keywords: []string{"시청", "구청", "군청", "도청", "주민센터", "읍사무소", "면사무소"},
		Weight:   1.1,
		Synonyms: map[string][]string{
			"주민센터": {"행정복지센터", "동주민센터", "동사무소"},
		},
	},
	CategoryEmergency: {
		Keywords: []string{"소방서", "119안전센터", "구조대", "구급대", "소방본부"},
		Weight:   1.3,
		Synonyms: map[string][]string{
			"소방서": {"119안전센터", "안전센터", "119"},
		},
	},
	CategoryEducation: {
		Keywords: []string{"학교", "초등학교", "중학교", "고등학교", "대학교", "유치원", "어린이집"},
		Weight:   1.1,
		Synonyms: map[string][]string{
			"초등학교": {"초교"},
			"대학교":  {"캠퍼스", "univ"},
		},
	},
	CategoryBusiness: {
		Keywords: []string{"주식회사", "공장", "빌딩", "타워", "산업단지"},
		Weight:   1.0,
		Synonyms: map[string][]string{
			"주식회사": {"기업"},
			"빌딩":   {"타워", "building"},
		},
	},
	CategoryResidential: {
		Keywords: []string{"아파트", "빌라", "연립주택", "주공"},
		Weight:   1.0,
		Synonyms: map[string][]string{
			"아파트": {"apt"},
		},
	},
	CategoryTransit: {
		Keywords: []string{"터미널", "공항", "기차역", "지하철역", "철도"},
		Weight:   1.1,
		Synonyms: map[string][]string{
			"터미널": {"버스터미널", "고속터미널"},
			"공항":  {"airport", "국제공항"},
		},
	},
	CategoryWelfare: {
		Keywords: []string{"복지관", "요양원", "경로당", "복지센터", "노인정"},
		Weight:   1.1,
		Synonyms: map[string][]string{
			"복지관": {"복지회관"},
			"요양원": {"요양센터"},
		},
	},
}

// STOP_WORDS는 중요 단어 추출에서 제외할 조사/접속어 목록입니다
var STOP_WORDS = map[string]bool{
	"및":   true,
	"또는":  true,
	"그리고": true,
	"관련":  true,
	"부설":  true,
	"소재":  true,
}
