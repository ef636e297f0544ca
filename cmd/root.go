package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/minsh-sh/minsh/core/config"
)

var cfgPath string

func loadConfig() (*config.Configuration, error) {
	return config.LoadOrDefault(afero.NewOsFs(), cfgPath)
}

// rootCmd represents the base command when called without any subcommands.
// Running it starts the interpreter directly.
var rootCmd = &cobra.Command{
	Use:   "minsh",
	Short: "A minimal interactive command interpreter",
	Long: `minsh reads one command line at a time, runs builtins in-process
and resolves everything else on PATH.`,
	Args: cobra.ExactArgs(0),
	RunE: runShell,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
