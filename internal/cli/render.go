package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dalmcut/dalmcut/pkg/render"
	"github.com/dalmcut/dalmcut/pkg/task"
)

// newRenderCmd creates the render command: build a DALM graph for one state
// and write it out as DOT or SVG.
func newRenderCmd() *cobra.Command {
	var (
		cfgPath  string
		stateStr string
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "render [task.toml]",
		Short: "Render a DALM graph for one state to DOT or SVG",
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
			logger.Infof("Computed %d landmarks", g.NumLandmarks())

			dot := render.ToDOT(g, render.Options{Detailed: detailed})

			var data []byte
			switch format {
			case "dot":
				data = []byte(dot)
			case "svg":
				data, err = render.RenderSVG(dot)
				if err != nil {
					return err
				}
			default:
				return errUnknownFormat(format)
			}

			if output == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "configuration file (defaults to config.Default())")
	cmd.Flags().StringVar(&stateStr, "state", "", "comma-separated state values (defaults to the task's initial state)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg or dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include action-set sizes and past markers in node labels")

	return cmd
}

func parseState(s string, fallback task.State) (task.State, error) {
	if s == "" {
		return fallback, nil
	}
	parts := strings.Split(s, ",")
	state := make(task.State, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		state[i] = v
	}
	return state, nil
}

func errUnknownFormat(format string) error {
	return &formatError{format: format}
}

type formatError struct{ format string }

func (e *formatError) Error() string {
	return "unknown format: " + e.format + " (must be 'svg' or 'dot')"
}
