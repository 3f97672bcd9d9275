package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/popgen/recording"
)

var historyCmd = &cobra.Command{
	Use:   "history [DB]",
	Short: "Print the validations recorded by validate --record.",
	Long: "`history [DB]` lists recorded validations ordered by run. DB " +
		"defaults to $" + envRecord + ".",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := os.Getenv(envRecord)
		if len(args) == 1 {
			path = args[0]
		}

		if path == "" {
			return fmt.Errorf("no database given and $%s is not set", envRecord)
		}

		if _, err := os.Stat(path); err != nil {
			return err
		}

		failed, _ := cmd.Flags().GetBool("failed")
		run, _ := cmd.Flags().GetString("run")
		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		reader, err := recording.NewReader(path)
		if err != nil {
			return err
		}
		defer reader.Close()

		entries, total, err := recording.QueryValidations(
			cmd.Context(), reader, recording.ValidationQuery{
				FailedOnly: failed,
				RunID:      run,
				Limit:      limit,
				Offset:     offset,
			})
		if err != nil {
			return err
		}

		printHistory(cmd.OutOrStdout(), entries, total, offset)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().Bool("failed", false, "Only list failed validations")
	historyCmd.Flags().String("run", "", "Only list the validations of this run")
	historyCmd.Flags().Int("limit", 0, "List at most this many validations")
	historyCmd.Flags().Int("offset", 0, "Skip this many validations; needs --limit")
}

func printHistory(
	out io.Writer,
	entries []recording.ValidationEntry,
	total, offset int,
) {
	for _, e := range entries {
		status := "ok"
		if !e.Valid {
			status = e.Error
		}

		fmt.Fprintf(out, "%s #%d %s demes=%d: %s\n",
			e.RunID, e.Seq, e.Model, e.NumDemes, status)
	}

	if len(entries) > 0 && len(entries) < total {
		fmt.Fprintf(out, "showing %d-%d of %d\n",
			offset+1, offset+len(entries), total)
	}
}
