package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/dalmcut/dalmcut/pkg/task"
)

// newQueryCmd creates the query command: compute and print the landmark
// graph for one state.
func newQueryCmd() *cobra.Command {
	var (
		cfgPath  string
		stateStr string
	)

	cmd := &cobra.Command{
		Use:   "query [task.toml]",
		Short: "Compute disjunctive action landmarks for one state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			t, err := task.Load(args[0])
			if err != nil {
				return err
			}
			state, err := parseState(stateStr, t.InitialState())
			if err != nil {
				return err
			}

			f, err := newFactory(cfg, t, args[0], cfgPath)
			if err != nil {
				return err
			}

			sp := newSpinner("Computing landmark graph...")
			sp.Start()
			start := time.Now()
			g, err := f.ComputeLandmarkGraph(state)
			duration := time.Since(start)
			if err != nil {
				sp.StopWithError(err.Error())
				return err
			}
			sp.StopWithSuccess("Computed landmark graph")

			if cfg.Store.MongoURI != "" {
				if err := persistQueryResult(cmd.Context(), cfg, args[0], cfgPath, state, f, g, duration); err != nil {
					printWarning("query history not persisted: %s", err)
				}
			}

			if g.IsDeadEnd() {
				printWarning("query state is a relaxed dead end")
				return nil
			}

			orderings := 0
			for id := 0; id < g.NumLandmarks(); id++ {
				orderings += len(g.Dependencies(id))
			}
			printStats(g.NumLandmarks(), orderings, false)

			for id := 0; id < g.NumLandmarks(); id++ {
				actions := make([]int, 0, len(g.Actions(id)))
				for op := range g.Actions(id) {
					actions = append(actions, op)
				}
				marker := ""
				if g.IsTrueInInitial(id) {
					marker = " (initially past)"
				}
				printDetail("lm%d: actions=%v%s", id, actions, marker)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "configuration file (defaults to config.Default())")
	cmd.Flags().StringVar(&stateStr, "state", "", "comma-separated state values (defaults to the task's initial state)")
	return cmd
}
