package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"
)

const version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version and check for a newer release",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gia %s\n", version)

		githubTag := &latest.GithubTag{
			Owner:      "patrick-levesque",
			Repository: "gitignore-assistant",
		}
		res, err := latest.Check(githubTag, version)
		if err != nil {
			log.Debug("update check failed: %v", err)
			return
		}
		if res.Outdated {
			fmt.Printf("a new version is available: %s\n", res.Current)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
