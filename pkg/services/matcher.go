package service

import (
	"time"

	"github.com/aems-dev/aems-go/pkg/configs"
	_interface "github.com/aems-dev/aems-go/pkg/interfaces"
	"github.com/aems-dev/aems-go/pkg/services/internal/matcher"
	structure "github.com/aems-dev/aems-go/pkg/types/structures"
	"github.com/aems-dev/aems-go/pkg/utils"
)

// MatcherImpl는 매칭 엔진을 감싸는 서비스 구현체입니다
type MatcherImpl struct {
	config   *configs.EnvConfig
	combiner *matcher.ScoreCombiner
	batch    *matcher.BatchMatcher
}

// NewMatcherService는 새 매칭 서비스를 생성합니다
// 키워드 사전은 여기서 한 번 주입되며 이후 읽기 전용으로만 사용됩니다
func NewMatcherService() _interface.MatcherService {
	config := configs.GetConfig()
	detector := matcher.NewDefaultKeywordDetector()
	combiner := matcher.NewScoreCombiner(detector)

	return &MatcherImpl{
		config:   config,
		combiner: combiner,
		batch:    matcher.NewBatchMatcher(combiner, config.Match.MinConfidence, config.Match.MaxResults),
	}
}

// NameSimilarity는 두 기관명의 유사도를 0~100 점수로 반환합니다
func (s *MatcherImpl) NameSimilarity(name1, name2 string) int {
	return s.combiner.NameScore(name1, name2)
}

// AddressSimilarity는 두 주소의 유사도를 0~100 점수로 반환합니다
func (s *MatcherImpl) AddressSimilarity(addr1, addr2 string) int {
	return matcher.AddressSimilarity(addr1, addr2)
}

// Match는 단일 대상-후보 쌍의 매칭 신뢰도와 판정 근거를 계산합니다
func (s *MatcherImpl) Match(targetName, targetAddress, candidateName, candidateAddress, subDivision string) *structure.SimilarityResult {
	start := time.Now()
	result := s.combiner.Match(targetName, targetAddress, candidateName, candidateAddress, subDivision)
	utils.RecordMatch(string(result.Method), time.Since(start).Seconds())
	return result
}

// BatchMatch는 대상 기관 목록을 같은 행정구역 후보로만 일괄 매칭합니다
func (s *MatcherImpl) BatchMatch(targets []structure.TargetInstitution, candidates []structure.EquipmentRecord) map[string][]structure.MatchCandidate {
	start := time.Now()
	results := s.batch.Match(targets, candidates)

	duration := time.Since(start).Seconds()
	utils.RecordBatchMatch(len(targets), duration)
	utils.Info("matcher", "배치 매칭 완료: 대상 %d건, 후보 %d건, 매칭 %d건 (%.3f초)",
		len(targets), len(candidates), len(results), duration)

	return results
}

// GroupEquipment는 동일 설치 장소의 장비 기록을 관리번호 단위로 묶습니다
func (s *MatcherImpl) GroupEquipment(records []structure.EquipmentRecord) map[string][]structure.ManagedEquipment {
	return matcher.GroupEquipment(records)
}
