package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
)

var removeCmd = &cobra.Command{
	Use:     "remove <path>...",
	Aliases: []string{"rm"},
	Short:   "remove entries from the ignore file",
	Args:    cobra.MinimumNArgs(1),
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
			log.Info("no %s file, nothing to remove", e.cfg.IgnoreFile)
			return nil
		}

		b := e.builder()
		total := 0
		for _, a := range args {
			rel, err := e.resolveTarget(a)
			if err != nil {
				return err
			}
			key, err := b.KeyFor(rel)
			if err != nil {
				return err
			}

			var removed int
			if lines, removed = ignore.RemoveKey(lines, key); removed > 0 {
				log.Info("removed %s", key)
				total += removed
			} else {
				log.Info("%s is not listed", key)
			}
		}

		if total == 0 {
			return nil
		}
		if err := e.store.Write([]byte(ignore.SerializeLines(lines))); err != nil {
			return errors.Join(errors.New("failed to write ignore file"), err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
