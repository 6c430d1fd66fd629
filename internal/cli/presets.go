package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/samdwyer/mazegen/internal/presets"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in presets and themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presetRegistry, err := presets.LoadPresetRegistry()
			if err != nil {
				return err
			}
			themeRegistry, err := presets.LoadThemeRegistry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tSIZE\tMETHOD\tDESCRIPTION")
			for _, p := range presetRegistry.All() {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", p.ID, p.Size, p.Method, p.Description)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "THEME\tNAME\tWALL\tPATH")
			for _, t := range themeRegistry.All() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Wall, t.Path)
			}
			return w.Flush()
		},
	}
}
