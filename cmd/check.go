package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/spf13/cobra"

	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "report whether paths are already matched by the ignore file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		lines, existed, err := e.readLines()
		if err != nil {
			return errors.Join(errors.New("failed to read ignore file"), err)
		}
		if !existed {
			log.Warn("no %s file, nothing matches", e.cfg.IgnoreFile)
		}

		patterns := make([]gitignore.Pattern, 0, len(lines))
		for _, l := range lines {
			t := strings.TrimSpace(l)
			if k := ignore.Classify(t); k == ignore.KindBlank || k == ignore.KindComment {
				continue
			}
			patterns = append(patterns, gitignore.ParsePattern(t, nil))
		}
		m := gitignore.NewMatcher(patterns)

		for _, a := range args {
			rel, err := e.resolveTarget(a)
			if err != nil {
				return err
			}
			rel, err = ignore.NormalizeTarget(rel)
			if err != nil {
				return err
			}

			pt, perr := e.probe.PathType(rel)
			if perr != nil {
				pt = ignore.PathNotFound
			}
			isDir := pt == ignore.PathDirectory

			if m.Match(strings.Split(rel, "/"), isDir) {
				fmt.Printf("%s: ignored\n", rel)
			} else {
				fmt.Printf("%s: not ignored\n", rel)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
