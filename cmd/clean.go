package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
	"github.com/patrick-levesque/gitignore-assistant/internal/storage"
)

var flagDryRun bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "normalize, deduplicate and optionally sort the ignore file",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		defer e.Close()

		data, err := e.store.Read()
		if err != nil {
			if storage.IsNotExist(err) {
				log.Info("no %s file, nothing to clean", e.cfg.IgnoreFile)
				return nil
			}
			return errors.Join(errors.New("failed to read ignore file"), err)
		}

		text := string(data)
		res := ignore.Clean(text, e.cfg.Options(), e.probe)
		out := ignore.SerializeLines(res.Lines)

		if flagDryRun {
			fmt.Print(out)
			report(res)
			return nil
		}

		if out == text {
			log.Info("%s is already clean", e.store.Location())
			return nil
		}
		report(res)

		if !flagYes {
			ok := false
			if err := huh.NewForm(huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Write cleaned %s?", e.cfg.IgnoreFile)).
					Value(&ok),
			)).Run(); err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		if err := e.store.Write([]byte(out)); err != nil {
			return errors.Join(errors.New("failed to write ignore file"), err)
		}
		log.Info("wrote %s", e.store.Location())

		return nil
	},
}

func report(res ignore.Result) {
	if !res.Changed() {
		log.Info("no changes beyond whitespace")
		return
	}
	if res.DuplicatesRemoved > 0 {
		log.Info("%d duplicate line(s) removed", res.DuplicatesRemoved)
	}
	if res.EmptyLinesRemoved > 0 {
		log.Info("%d empty line(s) removed", res.EmptyLinesRemoved)
	}
	if res.CommentsRemoved > 0 {
		log.Info("%d comment(s) removed", res.CommentsRemoved)
	}
	if res.BaseEntriesAdded {
		log.Info("missing base entries added")
	}
	if res.SortApplied {
		log.Info("entries sorted")
	}
}

func init() {
	cleanCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the cleaned file without writing it")
	rootCmd.AddCommand(cleanCmd)
}
