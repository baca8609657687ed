package storage

import (
	"fmt"
	"net"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/patrick-levesque/gitignore-assistant/internal/config"
	"github.com/patrick-levesque/gitignore-assistant/internal/util"
)

// hostKeyCallback verifies against the user's known_hosts when present and
// asks for confirmation on a mismatch. Without a known_hosts file every key
// is accepted.
func hostKeyCallback() ssh.HostKeyCallback {
	u, err := user.Current()
	if err != nil {
		return ssh.InsecureIgnoreHostKey()
	}

	path := filepath.Join(u.HomeDir, ".ssh", "known_hosts")
	if !util.Exists(path) {
		return ssh.InsecureIgnoreHostKey()
	}

	known, err := knownhosts.New(path)
	if err != nil {
		return ssh.InsecureIgnoreHostKey()
	}

	return func(hostname string, remote net.Addr, key ssh.PublicKey) error {
		err := known(hostname, remote, key)
		if err == nil {
			return nil
		}

		ok := false
		if fErr := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(err.Error()).
				Value(&ok).
				Affirmative("Allow").
				Negative("Cancel"),
		)).Run(); fErr == nil && ok {
			return nil
		}
		return err
	}
}

func connectSSH(r *config.Remote) (*ssh.Client, error) {
	cfg := &ssh.ClientConfig{
		User: r.User,
		Auth: []ssh.AuthMethod{
			ssh.Password(r.Password),
		},
		HostKeyCallback: hostKeyCallback(),
	}

	addr := fmt.Sprintf("%s:%d", r.Host, r.Port)
	client, err := ssh.Dial("tcp", addr, cfg)
	if err != nil {
		return nil, err
	}

	return client, nil
}
