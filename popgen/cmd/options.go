package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/popgen/paramfile"
	"github.com/sarchlab/popgen/params"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the options each model accepts.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), optionsTable())
	},
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func optionsTable() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s: %s\n", paramfile.ModelSingle,
		strings.Join(params.SingleDemeOptions(), ", "))
	fmt.Fprintf(&sb, "%s: %s\n", paramfile.ModelMulti,
		strings.Join(params.MultiDemeOptions(), ", "))

	return sb.String()
}
