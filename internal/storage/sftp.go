package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"

	"github.com/patrick-levesque/gitignore-assistant/internal/config"
	"github.com/patrick-levesque/gitignore-assistant/internal/ignore"
)

// SFTP stores the ignore file in a remote workspace reached over SFTP.
// It also serves as the path-type prober for that workspace.
type SFTP struct {
	sshClient  *ssh.Client
	sftpClient *sftp.Client
	wd         string
	file       string
}

// Connect dials the remote workspace and ensures its directory exists.
// file is the ignore file name inside the remote workspace path.
func Connect(r *config.Remote, file string) (*SFTP, error) {
	if r == nil {
		return nil, errors.New("cannot connect, remote config is nil")
	}

	s := &SFTP{wd: r.Path, file: file}
	var err error

	s.sshClient, err = connectSSH(r)
	if err != nil {
		return nil, errors.Join(errors.New("failed to establish ssh connection"), err)
	}

	s.sftpClient, err = sftp.NewClient(s.sshClient)
	if err != nil {
		_ = s.sshClient.Close()
		return nil, errors.Join(errors.New("failed to establish sftp connection"), err)
	}

	if err := s.sftpClient.MkdirAll(r.Path); err != nil && !os.IsExist(err) {
		_ = s.Close()
		return nil, errors.Join(errors.New("failed to ensure remote path exists"), err)
	}

	return s, nil
}

func (s *SFTP) Read() ([]byte, error) {
	f, err := s.sftpClient.Open(path.Join(s.wd, s.file))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil, fs.ErrNotExist
		}
		return nil, errors.Join(errors.New("failed to open remote file"), err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Join(errors.New("failed to read remote file"), err)
	}
	return data, nil
}

func (s *SFTP) Write(data []byte) error {
	f, err := s.sftpClient.Create(path.Join(s.wd, s.file))
	if err != nil {
		return errors.Join(errors.New("failed to create remote file"), err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return errors.Join(errors.New("failed to write remote file"), err)
	}
	return nil
}

func (s *SFTP) Location() string {
	return fmt.Sprintf("sftp://%s/%s", s.sshClient.RemoteAddr(), path.Join(s.wd, s.file))
}

// PathType probes a path relative to the remote workspace without following
// symbolic links, so the engine sees the same four types as locally.
func (s *SFTP) PathType(rel string) (ignore.PathType, error) {
	fi, err := s.sftpClient.Lstat(path.Join(s.wd, rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return ignore.PathNotFound, nil
		}
		return ignore.PathUnknown, err
	}

	switch {
	case fi.Mode()&fs.ModeSymlink != 0:
		return ignore.PathSymlink, nil
	case fi.IsDir():
		return ignore.PathDirectory, nil
	default:
		return ignore.PathFile, nil
	}
}

// TopEntries lists the remote workspace's top-level entry names,
// directories suffixed with "/", sorted, with the .git directory elided.
// Mirrors the local workspace listing so the add picker works in both
// modes.
func (s *SFTP) TopEntries() ([]string, error) {
	fis, err := s.sftpClient.ReadDir(s.wd)
	if err != nil {
		return nil, errors.Join(errors.New("failed to read remote workspace"), err)
	}
	return entryNames(fis), nil
}

func entryNames(fis []os.FileInfo) []string {
	names := make([]string, 0, len(fis))
	for _, fi := range fis {
		if fi.Name() == ".git" {
			continue
		}
		name := fi.Name()
		if fi.IsDir() {
			name += "/"
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *SFTP) Close() error {
	if s == nil {
		return nil
	}

	if s.sftpClient != nil {
		if err := s.sftpClient.Close(); err != nil {
			_ = s.sshClient.Close()
			return errors.Join(errors.New("failed to close SFTP client"), err)
		}
		s.sftpClient = nil
	}

	if s.sshClient != nil {
		if err := s.sshClient.Close(); err != nil {
			return errors.Join(errors.New("failed to close SSH client"), err)
		}
		s.sshClient = nil
	}

	return nil
}
