package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dalmcut/dalmcut/pkg/cache"
	"github.com/dalmcut/dalmcut/pkg/httpapi"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// newServeCmd creates the serve command: answer landmark-graph queries for
// one fixed task over HTTP.
func newServeCmd() *cobra.Command {
	var (
		cfgPath string
		addr    string
	)

	cmd := &cobra.Command{
		Use:   "serve [task.toml]",
		Short: "Serve landmark-graph queries for a task over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			t, err := task.Load(args[0])
			if err != nil {
				return err
			}
			f, err := newFactory(cfg, t, args[0], cfgPath)
			if err != nil {
				return err
			}

			st, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if st != nil {
				defer st.Close(cmd.Context())
				logger.Infof("Persisting query history to %s", cfg.Store.MongoURI)
			}

			taskHash := cache.Hash([]byte(args[0]))
			configHash := cache.Hash([]byte(cfgPath))
			srv := httpapi.NewServer(f, taskHash, configHash, st)

			logger.Infof("Listening on %s", addr)
			return http.ListenAndServe(addr, srv)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "configuration file (defaults to config.Default())")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	return cmd
}
