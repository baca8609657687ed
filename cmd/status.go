package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "show the ignore file's location, contents summary and policies",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		if e.cfg.Location != "" {
			fmt.Printf("config:      %s\n", e.cfg.Location)
		} else {
			fmt.Println("config:      (defaults)")
		}
		fmt.Printf("ignore file: %s\n", e.store.Location())

		lines, existed, err := e.readLines()
		if err != nil {
			return errors.Join(errors.New("failed to read ignore file"), err)
		}
		if !existed {
			fmt.Println("state:       missing")
			return nil
		}

		var literals, patterns, comments, blanks int
		for _, l := range lines {
			switch ignore.Classify(l) {
			case ignore.KindLiteral:
				literals++
			case ignore.KindPattern:
				patterns++
			case ignore.KindComment:
				comments++
			case ignore.KindBlank:
				blanks++
			}
		}
		fmt.Printf("lines:       %d (%d entries, %d patterns, %d comments, %d blank)\n",
			len(lines), literals, patterns, comments, blanks)

		fmt.Printf("policies:    anchor=%t folder-slash=%t strip-blank=%t strip-comments=%t sort=%t\n",
			e.cfg.AddWithLeadingSlash, e.cfg.TrailingSlashForFolders,
			e.cfg.RemoveEmptyLines, e.cfg.RemoveComments, e.cfg.SortWhenCleaning)
		fmt.Printf("base:        %v\n", e.cfg.BaseEntries)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
