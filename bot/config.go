package bot

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ChaseHBehrens/Fantasy-Realms-AI/oracle"
)

const (
	EnvStrategy    = "REALMS_STRATEGY"
	EnvWorkers     = "REALMS_WORKERS"
	EnvOracleCache = "REALMS_ORACLE_CACHE"
	EnvSeed        = "REALMS_SEED"
)

type Config struct {
	// Strategy is a name accepted by ParseKind.
	Strategy string
	// Workers bounds parallel scoring of top-level moves.
	Workers int
	// OracleCacheSize is the LRU size in front of the oracle (0 disables it).
	OracleCacheSize int
	// RNG seed for the random strategy (0 => time-based)
	Seed int64
}

func DefaultConfig() Config {
	return Config{
		Strategy:        KindGreedy.String(),
		Workers:         1,
		OracleCacheSize: oracle.DefaultCacheSize,
	}
}

func (c Config) validate() error {
	if _, err := ParseKind(c.Strategy); err != nil {
		return err
	}
	if c.Workers <= 0 {
		return fmt.Errorf("Workers must be > 0")
	}
	if c.OracleCacheSize < 0 {
		return fmt.Errorf("OracleCacheSize must be >= 0")
	}
	return nil
}

// ConfigFromEnv starts from DefaultConfig and applies any REALMS_* variables
// that are set.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if v := strings.TrimSpace(os.Getenv(EnvStrategy)); v != "" {
		cfg.Strategy = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvWorkers, v, err)
		}
		cfg.Workers = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvOracleCache)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvOracleCache, v, err)
		}
		cfg.OracleCacheSize = n
	}
	if v := strings.TrimSpace(os.Getenv(EnvSeed)); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = n
	}
	return cfg, cfg.validate()
}

// NewAgent validates the config and builds an agent scoring with score.
// The returned counter sees every call that reaches score.
func (c Config) NewAgent(score oracle.Oracle, logger *zap.Logger) (*Agent, *oracle.Counting, error) {
	if err := c.validate(); err != nil {
		return nil, nil, err
	}
	if score == nil {
		score = oracle.BaseStrength{}
	}
	counting := oracle.NewCounting(score)
	var scorer oracle.Oracle = counting
	if c.OracleCacheSize > 0 {
		cached, err := oracle.NewCached(counting, c.OracleCacheSize)
		if err != nil {
			return nil, nil, err
		}
		scorer = cached
	}
	agent, err := NewAgentByName(c.Strategy,
		WithOracle(scorer),
		WithWorkers(c.Workers),
		WithSeed(c.Seed),
		WithLogger(logger),
	)
	if err != nil {
		return nil, nil, err
	}
	return agent, counting, nil
}
