package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sarchlab/popgen/hooking"
	"github.com/sarchlab/popgen/paramfile"
	"github.com/sarchlab/popgen/recording"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE...",
	Short: "Validate parameter files.",
	Long: "`validate FILE...` loads and validates each file and prints ok " +
		"or the first problem found. It fails if any file is invalid.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		record, _ := cmd.Flags().GetString("record")
		if record == "" {
			record = os.Getenv(envRecord)
		}

		var hooks []hooking.Hook

		if verbose {
			logger := log.New(cmd.ErrOrStderr(), "popgen: ", 0)
			hooks = append(hooks, hooking.NewValidationLogger(logger))
		}

		if record != "" {
			recorder, err := recording.Open(record)
			if err != nil {
				return err
			}
			defer recorder.Flush()

			hooks = append(hooks, recording.NewValidationRecorder(recorder))
		}

		failed := validateFiles(cmd.OutOrStdout(), args, hooks)
		if failed > 0 {
			return fmt.Errorf("%d of %d files failed validation",
				failed, len(args))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("record", "",
		"Record the outcomes into this SQLite file (default $"+envRecord+")")
	validateCmd.Flags().BoolP("verbose", "v", false,
		"Log every validation")
}

// validateFiles prints one line per file and returns how many failed.
func validateFiles(out io.Writer, paths []string, hooks []hooking.Hook) int {
	failed := 0

	for _, path := range paths {
		err := validateFile(path, hooks)
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s: %v\n", path, err)

			continue
		}

		fmt.Fprintf(out, "%s: ok\n", path)
	}

	return failed
}

func validateFile(path string, hooks []hooking.Hook) error {
	p, err := paramfile.Load(path)
	if err != nil {
		return err
	}

	for _, h := range hooks {
		p.AcceptHook(h)
	}

	return p.Validate()
}
