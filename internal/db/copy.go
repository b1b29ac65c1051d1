package db

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/gyeh/facilitystats/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading StagingRows from a
// channel, giving natural backpressure between the builder and COPY writer.
type ChannelSource struct {
	ctx     context.Context
	ch      <-chan *model.StagingRow
	current *model.StagingRow
	err     error
}

// NewChannelSource creates a CopyFromSource backed by a channel. ctx cancels
// the iteration mid-stream.
func NewChannelSource(ctx context.Context, ch <-chan *model.StagingRow) *ChannelSource {
	return &ChannelSource{ctx: ctx, ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed
// or the context is canceled.
func (s *ChannelSource) Next() bool {
	select {
	case row, ok := <-s.ch:
		if !ok {
			return false
		}
		s.current = row
		return true
	case <-s.ctx.Done():
		s.err = s.ctx.Err()
		return false
	}
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err returns any error encountered during iteration.
func (s *ChannelSource) Err() error {
	return s.err
}

// Compile-time check that ChannelSource satisfies the interface.
var _ pgx.CopyFromSource = (*ChannelSource)(nil)
