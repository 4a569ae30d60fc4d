package cli

import (
	"github.com/spf13/cobra"

	"github.com/dalmcut/dalmcut/pkg/cache"
	"github.com/dalmcut/dalmcut/pkg/config"
)

// newCacheCmd creates the cache inspection command.
func newCacheCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the abstraction/landmark-graph cache backend",
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "configuration file (defaults to config.Default())")

	cmd.AddCommand(newCacheInfoCmd(&cfgPath))
	return cmd
}

func newCacheInfoCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print which cache backend is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if cfg.Cache.RedisAddr == "" {
				printInfo("backend: in-memory (no cache.redis_addr configured)")
				return nil
			}
			printInfo("backend: redis")
			printDetail("address: %s", cfg.Cache.RedisAddr)
			return nil
		},
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newCacheBackend constructs the Cache cfg.Cache selects: Redis when
// redis_addr is set, otherwise an in-process memory cache.
func newCacheBackend(cfg config.Config) (cache.Cache, error) {
	if cfg.Cache.RedisAddr == "" {
		return cache.NewMemoryCache(), nil
	}
	return cache.NewRedisCache(cfg.Cache.RedisAddr)
}
