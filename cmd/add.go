package cmd

import (
	"errors"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
)

var addCmd = &cobra.Command{
	Use:   "add [path]...",
	Short: "add paths to the ignore file",
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

		targets, err := pickTargets(e, args, lines)
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			log.Info("nothing selected")
			return nil
		}

		if !existed {
			log.Info("creating %s", e.store.Location())
		}

		lines, changed := ignore.EnsureBaseEntries(lines, e.cfg.BaseEntries)

		b := e.builder()
		for _, t := range targets {
			line, err := b.Build(t)
			if err != nil {
				return err
			}

			var added bool
			if lines, added = ignore.AddLine(lines, line); added {
				log.Info("added %s", line)
				changed = true
			} else {
				log.Info("%s is already present", line)
			}
		}

		if !changed && existed {
			return nil
		}
		if err := e.store.Write([]byte(ignore.SerializeLines(lines))); err != nil {
			return errors.Join(errors.New("failed to write ignore file"), err)
		}

		return nil
	},
}

// pickTargets resolves command-line paths, or prompts with the workspace's
// top-level entries not yet listed in the file.
func pickTargets(e *env, args []string, lines []string) ([]string, error) {
	if len(args) > 0 {
		targets := make([]string, 0, len(args))
		for _, a := range args {
			rel, err := e.resolveTarget(a)
			if err != nil {
				return nil, err
			}
			targets = append(targets, rel)
		}
		return targets, nil
	}

	entries, err := e.topEntries()
	if err != nil {
		return nil, err
	}
	entries = unlistedEntries(entries, lines, e.cfg.IgnoreFile)
	if len(entries) == 0 {
		return nil, errors.New("every top-level entry is already listed")
	}

	var picked []string
	if err := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Paths to ignore").
			Options(huh.NewOptions(entries...)...).
			Value(&picked),
	)).Run(); err != nil {
		return nil, err
	}

	// Picker entries are workspace-relative already; anchor them at the
	// root so resolution is independent of the current directory.
	targets := make([]string, 0, len(picked))
	for _, p := range picked {
		if e.cfg.Remote != nil {
			targets = append(targets, p)
			continue
		}
		rel, err := e.ws.Rel(filepath.Join(e.ws.Root, p))
		if err != nil {
			return nil, err
		}
		targets = append(targets, rel)
	}
	return targets, nil
}

// unlistedEntries filters picker candidates down to those not already
// listed in the file by canonical key. The rule file itself is never
// offered.
func unlistedEntries(entries, lines []string, ruleFile string) []string {
	keys := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if ignore.Classify(l) == ignore.KindLiteral {
			keys[ignore.Key(l)] = struct{}{}
		}
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		k := ignore.Key(entry)
		if k == "" || k == ruleFile {
			continue
		}
		if _, ok := keys[k]; ok {
			continue
		}
		out = append(out, entry)
	}
	return out
}

func init() {
	rootCmd.AddCommand(addCmd)
}
