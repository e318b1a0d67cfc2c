package config

// CoachLimits tunes the feedback loop's timers and client limits. The
// defaults mirror the coaching engine's designed behavior; they are exposed
// here so deployments can slow the loop down, never to change analysis
// semantics.
type CoachLimits struct {
	// CooldownSeconds is the minimum wall-clock gap between dispatched
	// feedback cycles in one session.
	CooldownSeconds int `yaml:"cooldown_seconds" validate:"required,min=1,max=300"`
	// PauseSeconds is the idle time before a typing pause may trigger.
	PauseSeconds int `yaml:"pause_seconds" validate:"required,min=1,max=60"`
	// MaxRetries bounds generation-call retries before falling back.
	MaxRetries int `yaml:"max_retries" validate:"min=0,max=5"`
	// MaxConcurrentScores bounds the CLI batch scorer's parallelism.
	MaxConcurrentScores int `yaml:"max_concurrent_scores" validate:"required,min=1,max=32"`
	// RateLimit caps generation-call throughput.
	RateLimit RateLimitConfig `yaml:"rate_limit" validate:"required"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `yaml:"requests_per_minute" validate:"required,min=1,max=1000"`
	BurstSize         int `yaml:"burst_size" validate:"required,min=1,max=100"`
}

func DefaultCoachLimits() CoachLimits {
	return CoachLimits{
		CooldownSeconds:     8,
		PauseSeconds:        3,
		MaxRetries:          2,
		MaxConcurrentScores: 4,
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 30,
			BurstSize:         5,
		},
	}
}
