package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dijkstraviz/scenario"
)

func newDemoCmd(o *rootOptions) *cobra.Command {
	var (
		format string
		out    string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a builtin scenario as YAML or TOML",
		Long: `Demo prints the builtin scenario named by --scenario, ready to be edited and
loaded back with --scenario path/to/file.yaml. --list shows the builtins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			if list {
				width := keyWidth
				for _, name := range scenario.Names() {
					width = max(width, len(name))
				}
				for _, name := range scenario.Names() {
					sc, err := scenario.Builtin(name)
					if err != nil {
						return err
					}
					printKeyValueWidth(w, width, name, sc.Description+" "+styleDim.Render(
						strconv.Itoa(len(sc.Nodes))+" nodes, "+strconv.Itoa(len(sc.Edges))+" edges"))
				}
				return nil
			}

			sc, err := scenario.Builtin(o.scenario)
			if err != nil {
				return err
			}
			data, err := scenario.Encode(sc, scenario.Format(format))
			if err != nil {
				return err
			}

			if out == "" {
				_, err = w.Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			printSuccess(w, "wrote scenario %q", sc.Name)
			printFile(w, out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(scenario.FormatYAML), "output format: yaml or toml")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout")
	cmd.Flags().BoolVar(&list, "list", false, "list builtin scenarios")

	return cmd
}
