package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dalmcut/dalmcut/pkg/task"
)

// newBuildCmd creates the build command: load a task, validate its shape,
// and report how it will be abstracted under the given configuration.
func newBuildCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "build [task.toml]",
		Short: "Validate a task and build its abstractions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			t, err := task.Load(args[0])
			if err != nil {
				printError("%s", err)
				return err
			}
			logger.Infof("Loaded task: %d variables, %d operators", t.NumVariables(), t.NumOperators())

			sp := newSpinner("Building abstractions...")
			sp.Start()
			f, err := newFactory(cfg, t, args[0], cfgPath)
			if err != nil {
				sp.StopWithError(err.Error())
				return err
			}
			sp.StopWithSuccess("Task validated")
			if cfg.Landmarks.JustificationGraph {
				printKeyValue("mode", "justification graph (lm-cut)")
			} else {
				printKeyValue("mode", "pattern collection")
			}
			printKeyValue("abstractions", strconv.Itoa(f.NumAbstractions()))
			printNextStep("Query landmarks for the initial state", "dalmcut query "+args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "configuration file (defaults to config.Default())")
	return cmd
}
