package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dalmcut/dalmcut/internal/tui"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// newTUICmd creates the tui command: browse a landmark graph interactively.
func newTUICmd() *cobra.Command {
	var (
		cfgPath  string
		stateStr string
	)

	cmd := &cobra.Command{
		Use:   "tui [task.toml]",
		Short: "Browse a landmark graph interactively",
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
			g, err := f.ComputeLandmarkGraph(state)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewBrowserModel(g))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "configuration file (defaults to config.Default())")
	cmd.Flags().StringVar(&stateStr, "state", "", "comma-separated state values (defaults to the task's initial state)")
	return cmd
}
