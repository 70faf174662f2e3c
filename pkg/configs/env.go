package configs

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/viper"
)

// 앱 버전을 저장하는 전역 변수
var AppVersion string

type EnvConfig struct {
	Server struct {
		Port    string `mapstructure:"PORT"`
		AppName string `mapstructure:"APP_NAME"`
	}
	Match struct {
		MinConfidence int `mapstructure:"MATCH_MIN_CONFIDENCE"`
		MaxResults    int `mapstructure:"MATCH_MAX_RESULTS"`
	}
}

var (
	configInstance *EnvConfig
	once           sync.Once
)

// init 함수에서 VERSION 환경 변수 로드
func init() {
	AppVersion = os.Getenv("VERSION")
	if AppVersion == "" {
		AppVersion = "dev"
	}

	// 개발 환경일 경우 항상 "dev"로 설정
	if os.Getenv("APP_ENV") == "dev" {
		AppVersion = "dev"
	}
}

// loadConfig는 환경 변수를 로드하고 기본값을 적용하는 내부 함수
func loadConfig() *EnvConfig {
	viper.SetConfigFile(".env")
	viper.ReadInConfig()
	viper.AutomaticEnv()

	// 기본값 설정
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("APP_NAME", "AEMS-MATCH-GO")
	viper.SetDefault("MATCH_MIN_CONFIDENCE", 50)
	viper.SetDefault("MATCH_MAX_RESULTS", 10)

	config := &EnvConfig{}
	config.Server.Port = viper.GetString("PORT")
	config.Server.AppName = viper.GetString("APP_NAME")
	config.Match.MinConfidence = viper.GetInt("MATCH_MIN_CONFIDENCE")
	config.Match.MaxResults = viper.GetInt("MATCH_MAX_RESULTS")

	return config
}

// GetConfig는 EnvConfig의 싱글톤 인스턴스를 반환합니다.
// 처음 호출 시에만 환경 변수를 로드하고 이후 호출에서는 캐시된 인스턴스를 반환합니다.
func GetConfig() *EnvConfig {
	once.Do(func() {
		configInstance = loadConfig()
		fmt.Printf("환경 변수 로드 완료 (앱 버전: %s)\n", AppVersion)
	})
	return configInstance
}
