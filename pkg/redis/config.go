package redis

import "time"

type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                              // ConnectionURL is the server URL, e.g. "redis://:password@localhost:6379/0". Empty disables Redis.
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // RetryAttempts is the number of startup connection attempts.
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`   // RetryInterval is the interval between startup attempts.
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"` // ConnectTimeout bounds the whole connection phase.
}

// Enabled reports whether a Redis server is configured.
func (c Config) Enabled() bool {
	return c.ConnectionURL != ""
}
