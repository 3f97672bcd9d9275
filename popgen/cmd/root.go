// Package cmd provides the command-line interface for popgen.
package cmd

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// envRecord names the variable holding the default --record path.
const envRecord = "POPGEN_RECORD"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "popgen",
	Short: "popgen checks the parameters of forward-time population " +
		"genetics simulations.",
	Long: `popgen checks the parameters of forward-time population ` +
		`genetics simulations. Parameter files are written in YAML or JSON ` +
		`and describe a single-deme or a multi-deme model.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(loadEnv)
}

// loadEnv reads a .env file in the working directory, if there is one.
// Variables already set in the environment win.
func loadEnv() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: cannot load .env: %v", err)
	}
}

// Execute adds all child commands to the root command and sets flags
// appropriately. It exits through atexit so open recorders are closed.
func Execute() {
	code := 0

	err := rootCmd.Execute()
	if err != nil {
		code = 1
	}

	atexit.Exit(code)
}
