package config

// GeminiConfig 는 Gemini 호출 설정이다.
type GeminiConfig struct {
	APIKeys           []string
	Model             string `validate:"required"`
	TimeoutSeconds    int    `validate:"gt=0"`
	MaxOutputTokens   int    `validate:"gt=0"`
	MaxRetries        int    `validate:"gte=0"`
	BackoffBaseMillis int    `validate:"gte=0"`
}

// PrimaryKey 는 기본 API 키를 반환한다.
func (g GeminiConfig) PrimaryKey() string {
	if len(g.APIKeys) == 0 {
		return ""
	}
	return g.APIKeys[0]
}

// LimitsConfig 는 요청 필드별 상한 설정이다.
type LimitsConfig struct {
	// MaxFibonacciTerms 는 92 를 넘을 수 없다. 93번째 항부터 int64 를 넘는다.
	MaxFibonacciTerms int   `validate:"gt=0,lte=92"`
	MaxArrayLength    int   `validate:"gt=0"`
	MaxQuestionLength int   `validate:"gt=0"`
	MaxBodyBytes      int64 `validate:"gt=0"`
}

// LoggingConfig 는 로깅 설정이다.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig 는 HTTP 서버 설정이다.
type HTTPConfig struct {
	Host         string
	Port         int `validate:"gt=0,lte=65535"`
	HTTP2Enabled bool
}

// HTTPRateLimitConfig 는 요청 제한 설정이다.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int
	CacheSize         int
	CacheTTLSeconds   int
}

// Config 는 애플리케이션 전체 설정이다.
type Config struct {
	// Identifier 는 모든 응답 envelope 에 실리는 식별 이메일이다.
	Identifier    string `validate:"required,email"`
	Gemini        GeminiConfig
	Limits        LimitsConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPRateLimit HTTPRateLimitConfig
}

func buildConfig() *Config {
	return &Config{
		Identifier: getEnvString("OFFICIAL_EMAIL", "admin@example.com"),
		Gemini: GeminiConfig{
			APIKeys:           parseAPIKeys(),
			Model:             getEnvString("GEMINI_MODEL", "gemini-2.5-flash"),
			TimeoutSeconds:    getEnvInt("GEMINI_TIMEOUT", 30),
			MaxOutputTokens:   getEnvInt("GEMINI_MAX_TOKENS", 32),
			MaxRetries:        getEnvNonNegativeInt("GEMINI_MAX_RETRIES", 2),
			BackoffBaseMillis: getEnvNonNegativeInt("GEMINI_BACKOFF_BASE_MS", 500),
		},
		Limits: LimitsConfig{
			MaxFibonacciTerms: getEnvInt("MAX_FIBONACCI_TERMS", 92),
			MaxArrayLength:    getEnvInt("MAX_ARRAY_LENGTH", 1000),
			MaxQuestionLength: getEnvInt("MAX_QUESTION_LENGTH", 500),
			MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", 1<<20)),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "0.0.0.0"),
			Port:         getEnvInt("HTTP_PORT", 8000),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", false),
		},
		HTTPRateLimit: HTTPRateLimitConfig{
			RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
			CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
			CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
		},
	}
}
