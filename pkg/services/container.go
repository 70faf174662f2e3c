package service

import (
	_interface "github.com/aems-dev/aems-go/pkg/interfaces"
)

// NewServiceContainer는 새로운 서비스 컨테이너를 생성합니다
func NewServiceContainer() *_interface.ServiceContainer {
	matcherService := NewMatcherService()

	return &_interface.ServiceContainer{
		MatcherService: matcherService,
	}
}
