package inventory

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/adapter"
	"github.com/feral-file/ff-video-warehouse/internal/logger"
)

// Lister lists candidate video identifiers from the remote inventory
//
//go:generate mockgen -source=lister.go -destination=../../mocks/inventory.go -package=mocks -mock_names=Lister=MockInventoryLister
type Lister interface {
	// List returns the names in the inventory directory matching pattern, in name order.
	// Names are not validated as video identifiers.
	List(ctx context.Context, pattern string) ([]string, error)
}

// Config holds the inventory location
type Config struct {
	SFTP      adapter.SFTPConfig
	Directory string
	// TrimExtension strips a file extension so that "abc12345678.mp4" lists as "abc12345678"
	TrimExtension bool
}

type sftpLister struct {
	config Config
	dialer adapter.SFTPDialer
}

// NewSFTPLister creates a lister over an SFTP directory
func NewSFTPLister(config Config, dialer adapter.SFTPDialer) Lister {
	return &sftpLister{config: config, dialer: dialer}
}

// List opens a session, lists the directory and closes the session
func (l *sftpLister) List(ctx context.Context, pattern string) ([]string, error) {
	if pattern == "" {
		pattern = "*"
	}
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid inventory pattern %q: %w", pattern, err)
	}

	client, err := l.dialer.Dial(ctx, l.config.SFTP)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to inventory: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.WarnCtx(ctx, "failed to close inventory session", zap.Error(err))
		}
	}()

	entries, err := client.ReadDir(l.config.Directory)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory directory %s: %w", l.config.Directory, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if l.config.TrimExtension {
			name = strings.TrimSuffix(name, path.Ext(name))
		}
		if ok, _ := path.Match(pattern, name); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	logger.InfoCtx(ctx, "Listed inventory",
		zap.String("directory", l.config.Directory),
		zap.String("pattern", pattern),
		zap.Int("entries", len(entries)),
		zap.Int("matched", len(names)),
	)

	return names, nil
}
