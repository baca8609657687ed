package cmd

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/patrick-levesque/gitignore-assistant/internal/config"
	"github.com/patrick-levesque/gitignore-assistant/internal/util"
	"github.com/patrick-levesque/gitignore-assistant/internal/workspace"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "interactively configure policies for this workspace",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			c = config.Default()
		}

		base := strings.Join(c.BaseEntries, ", ")
		useRemote := c.Remote != nil
		r := config.Remote{Port: 22}
		if c.Remote != nil {
			r = *c.Remote
		}
		port := strconv.Itoa(r.Port)

		if err := huh.NewForm(huh.NewGroup(
			huh.NewInput().
				Title("Ignore file name").
				Value(&c.IgnoreFile),
			huh.NewInput().
				Title("Base entries (comma separated, empty disables)").
				Value(&base),
			huh.NewConfirm().
				Title("Anchor new entries with a leading slash?").
				Value(&c.AddWithLeadingSlash),
			huh.NewConfirm().
				Title("Suffix folder entries with a trailing slash?").
				Value(&c.TrailingSlashForFolders),
			huh.NewConfirm().
				Title("Remove empty lines when cleaning?").
				Value(&c.RemoveEmptyLines),
			huh.NewConfirm().
				Title("Remove comments when cleaning?").
				Value(&c.RemoveComments),
			huh.NewConfirm().
				Title("Sort entries when cleaning?").
				Value(&c.SortWhenCleaning),
			huh.NewConfirm().
				Title("Manage an ignore file in a remote SFTP workspace?").
				Value(&useRemote),
		)).Run(); err != nil {
			return err
		}

		if useRemote {
			if err := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Host").
					Value(&r.Host),
				huh.NewInput().
					Title("Port").
					Validate(func(s string) error {
						i, err := strconv.Atoi(s)
						if err != nil {
							return err
						}
						if i < 0 || i > 65535 {
							return errors.New("out of range 0-65535")
						}
						return nil
					}).
					Value(&port),
				huh.NewInput().
					Title("User").
					Value(&r.User),
				huh.NewInput().
					Title("Password").
					EchoMode(huh.EchoModePassword).
					Value(&r.Password),
				huh.NewInput().
					Title("Remote workspace path").
					Value(&r.Path),
			)).Run(); err != nil {
				return err
			}

			r.Port, err = strconv.Atoi(port)
			if err != nil {
				panic(err)
			}
			c.Remote = &r
		} else {
			c.Remote = nil
		}

		c.BaseEntries = util.SplitList(base)
		if c.IgnoreFile == "" {
			c.IgnoreFile = ".gitignore"
		}

		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		root, err := workspace.FindRoot(wd)
		if err != nil {
			return errors.Join(errors.New("failed to find workspace root"), err)
		}

		if err := c.Save(root); err != nil {
			return errors.Join(errors.New("failed to save config"), err)
		}
		log.Info("wrote %s", c.Location)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
