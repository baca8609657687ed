package cmd

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/patrick-levesque/gitignore-assistant/internal/config"
	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
	"github.com/patrick-levesque/gitignore-assistant/internal/storage"
	"github.com/patrick-levesque/gitignore-assistant/internal/workspace"
)

// env bundles what every command needs: the policies, the workspace, the
// ignore file's storage and the path-type probe for that workspace.
type env struct {
	cfg   *config.Config
	ws    *workspace.Workspace
	store storage.Store
	probe ignore.Prober
}

func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Join(errors.New("failed to load config"), err)
	}

	var root string
	if cfg.Location != "" {
		root = filepath.Dir(cfg.Location)
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if root, err = workspace.FindRoot(wd); err != nil {
			return nil, errors.Join(errors.New("failed to find workspace root"), err)
		}
	}

	e := &env{cfg: cfg, ws: &workspace.Workspace{Root: root}}

	if cfg.Remote != nil {
		s, err := storage.Connect(cfg.Remote, cfg.IgnoreFile)
		if err != nil {
			return nil, errors.Join(errors.New("failed to connect to remote workspace"), err)
		}
		e.store = s
		e.probe = s
	} else {
		e.store = storage.NewLocal(filepath.Join(root, cfg.IgnoreFile))
		e.probe = e.ws
	}

	return e, nil
}

func (e *env) Close() {
	if e.store != nil {
		_ = e.store.Close()
	}
}

// readLines loads the current ignore file. A missing file yields an empty
// sequence and existed=false; that is not an error here.
func (e *env) readLines() ([]string, bool, error) {
	data, err := e.store.Read()
	if err != nil {
		if storage.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return ignore.ParseLines(string(data)), true, nil
}

func (e *env) builder() *ignore.Builder {
	return &ignore.Builder{
		Probe:    e.probe,
		RuleFile: e.cfg.IgnoreFile,
		Opts:     e.cfg.Options(),
	}
}

// topEntries lists the active workspace's top-level entries for the add
// picker: the remote directory in SFTP mode, the local root otherwise.
func (e *env) topEntries() ([]string, error) {
	if s, ok := e.store.(*storage.SFTP); ok {
		return s.TopEntries()
	}
	return e.ws.TopEntries()
}

// resolveTarget turns a user-supplied path into workspace-relative form.
// Remote workspaces take targets as given; local ones resolve against the
// current directory.
func (e *env) resolveTarget(t string) (string, error) {
	if e.cfg.Remote != nil {
		return t, nil
	}
	return e.ws.Rel(t)
}
