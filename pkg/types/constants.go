package constants

// 매칭 엔진 설정
const (
	// 배치 매칭에서 결과로 인정하는 최소 신뢰도
	MATCH_MIN_CONFIDENCE = 50
	// 대상 기관당 반환하는 최대 후보 수
	MATCH_MAX_RESULTS = 10
	// 중요 단어 추출 시 반환하는 최대 토큰 수
	IMPORTANT_TERM_LIMIT = 5
)

// 최종 신뢰도 가중치
const (
	NAME_SCORE_WEIGHT    = 0.5
	ADDRESS_SCORE_WEIGHT = 0.35
	KEYWORD_BONUS_WEIGHT = 0.15
)

// 배치 매칭에서 동시에 처리하는 대상 기관 수 상한
const BATCH_MAX_WORKERS = 8
