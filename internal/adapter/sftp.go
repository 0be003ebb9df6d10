package adapter

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SFTPConfig holds the connection settings for an SFTP server
type SFTPConfig struct {
	Host           string
	Port           int
	Username       string
	Password       string
	PrivateKeyPath string
	// HostKey is the server public key in authorized_keys format
	// An empty value disables host key verification
	HostKey     string
	DialTimeout time.Duration
}

// SFTPClient defines the subset of SFTP operations used for inventory listing
//
//go:generate mockgen -source=sftp.go -destination=../mocks/sftp.go -package=mocks -mock_names=SFTPClient=MockSFTPClient,SFTPDialer=MockSFTPDialer
type SFTPClient interface {
	// ReadDir lists the entries of a remote directory
	ReadDir(path string) ([]os.FileInfo, error)
	// Close closes the session and the underlying SSH connection
	Close() error
}

// SFTPDialer opens SFTP sessions
type SFTPDialer interface {
	Dial(ctx context.Context, cfg SFTPConfig) (SFTPClient, error)
}

// RealSFTPDialer implements SFTPDialer over golang.org/x/crypto/ssh
type RealSFTPDialer struct {
	fs FileSystem
}

// NewSFTPDialer creates a new real SFTP dialer
func NewSFTPDialer(fs FileSystem) SFTPDialer {
	return &RealSFTPDialer{fs: fs}
}

func (d *RealSFTPDialer) Dial(ctx context.Context, cfg SFTPConfig) (SFTPClient, error) {
	auth, err := d.authMethods(cfg)
	if err != nil {
		return nil, err
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey() //nolint:gosec,G106
	if cfg.HostKey != "" {
		key, _, _, _, err := ssh.ParseAuthorizedKey([]byte(cfg.HostKey))
		if err != nil {
			return nil, fmt.Errorf("failed to parse host key: %w", err)
		}
		hostKeyCallback = ssh.FixedHostKey(key)
	}

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	dialer := net.Dialer{Timeout: timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", addr, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, &ssh.ClientConfig{
		User:            cfg.Username,
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         timeout,
	})
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open ssh connection: %w", err)
	}
	sshClient := ssh.NewClient(sshConn, chans, reqs)

	client, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, fmt.Errorf("failed to start sftp session: %w", err)
	}

	return &sftpSession{client: client, ssh: sshClient}, nil
}

func (d *RealSFTPDialer) authMethods(cfg SFTPConfig) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod
	if cfg.PrivateKeyPath != "" {
		pem, err := d.fs.ReadFile(cfg.PrivateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read private key: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(pem)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}
	if cfg.Password != "" {
		methods = append(methods, ssh.Password(cfg.Password))
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("no sftp credentials configured for %s", cfg.Username)
	}
	return methods, nil
}

// sftpSession closes both the SFTP session and the SSH connection it runs on
type sftpSession struct {
	client *sftp.Client
	ssh    *ssh.Client
}

func (s *sftpSession) ReadDir(path string) ([]os.FileInfo, error) {
	return s.client.ReadDir(path)
}

func (s *sftpSession) Close() error {
	err := s.client.Close()
	if sshErr := s.ssh.Close(); err == nil {
		err = sshErr
	}
	return err
}
