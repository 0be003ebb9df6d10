package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/feral-file/ff-video-warehouse/internal/logger"
)

// Sweeper is a long-running background task performing periodic warehouse maintenance
//
//go:generate mockgen -source=sweeper.go -destination=../mocks/sweeper.go -package=mocks -mock_names=Sweeper=MockSweeper
type Sweeper interface {
	// Start runs the sweeper loop and blocks until the context is canceled or Stop is called
	Start(ctx context.Context) error

	// Stop waits for the in-progress cycle to finish
	Stop(ctx context.Context) error

	// Name identifies the sweeper in logs
	Name() string
}

var _ Sweeper = (*Retention)(nil)

// Group runs several sweepers side by side
type Group struct {
	sweepers []Sweeper
	wg       sync.WaitGroup
	errCh    chan error
}

// NewGroup creates a group over the given sweepers
func NewGroup(sweepers ...Sweeper) *Group {
	return &Group{sweepers: sweepers, errCh: make(chan error, len(sweepers))}
}

// Start launches every sweeper in its own goroutine.
// A sweeper that exits with an error reports it on Errors.
func (g *Group) Start(ctx context.Context) {
	for _, s := range g.sweepers {
		g.wg.Add(1)
		go func() {
			defer g.wg.Done()
			if err := s.Start(ctx); err != nil {
				g.errCh <- fmt.Errorf("sweeper %s: %w", s.Name(), err)
			}
		}()
	}
}

// Errors delivers the start errors of failed sweepers
func (g *Group) Errors() <-chan error {
	return g.errCh
}

// Stop stops every sweeper and waits for their loops to return
func (g *Group) Stop(ctx context.Context) error {
	var errs []error
	for _, s := range g.sweepers {
		if err := s.Stop(ctx); err != nil {
			logger.WarnCtx(ctx, "Sweeper did not stop cleanly", zap.String("sweeper", s.Name()), zap.Error(err))
			errs = append(errs, err)
		}
	}

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		errs = append(errs, ctx.Err())
	}
	return errors.Join(errs...)
}
