package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/patrick-levesque/gitignore-assistant/internal/logger"
)

var (
	flagYes     bool
	flagVerbose bool
	flagQuiet   bool

	log = logger.New(os.Stderr)
)

var rootCmd = &cobra.Command{
	Use:   "gia",
	Short: "keep a project's .gitignore normalized and tidy",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case flagVerbose:
			log.SetLevel(logger.LevelDebug)
		case flagQuiet:
			log.SetLevel(logger.LevelWarn)
		}
	},
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "answer yes to confirmation prompts")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress informational output")
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
