package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/couchcryptid/pipe-headloss/internal/materials"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the built-in pipe material roughness catalog",
	Long: `List every pipe material the calculator knows, with its absolute
roughness in millimeters. Pass a name to --material on the root
command to use a value from this table.`,
	Run: func(cmd *cobra.Command, args []string) {
		writeMaterials(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

// writeMaterials renders the catalog as an aligned table.
func writeMaterials(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MATERIAL\tROUGHNESS (MM)\tNOTE")
	for _, m := range materials.All() {
		fmt.Fprintf(tw, "%s\t%v\t%s\n", m.Name, m.RoughnessMm, m.Note)
	}
	tw.Flush()
}
