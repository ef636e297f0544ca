package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/minsh-sh/minsh/core/shell"
	"github.com/minsh-sh/minsh/core/vos"
)

// runCmd starts the interpreter, same as running the bare root command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interpreter on the current terminal.",
	Args:  cobra.ExactArgs(0),
	RunE:  runShell,
}

func runShell(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	hostOS := vos.NewHostOS()

	var reader shell.LineReader
	if term.IsTerminal(int(os.Stdin.Fd())) {
		if cfg.Motd != "" {
			color.New(color.FgCyan).Fprintln(os.Stdout, cfg.Motd)
		}
		reader, err = shell.NewReadlineReader(cfg.Prompt, cfg.HistoryFile)
		if err != nil {
			return err
		}
	} else {
		reader = shell.NewScannerReader(cfg.Prompt, os.Stdin, os.Stdout)
	}

	status := shell.New(hostOS, reader).Run()
	reader.Close()
	os.Exit(status)
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)
}
