// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// listCmd prints the catalog
var listCmd = &cobra.Command{
	Use:   "list [files...]",
	Short: "List tracks",
	Long:  "List the tracks of the configured catalog, or of the files given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		cat, err := loadCatalog(cfg, args)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "#\tNAME\tFORMAT\tSOURCE")

		for i := range cat.Len() {
			t, err := cat.Track(i)
			if err != nil {
				return err
			}

			format := t.Format()
			if format == "" {
				format = "auto"
			}

			where := "file"
			if t.InMemory() {
				where = "memory"
			}

			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, t.Name(), format, where)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
