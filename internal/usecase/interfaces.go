package usecase

import (
	"context"

	"github.com/iho/fintrack/internal/domain"
)

// SnapshotStore persists the ledger's queryable state at the boundary.
// The core never writes storage itself; the use case layer snapshots the
// state after every mutating command. Load returns (nil, nil) when no
// snapshot exists yet.
type SnapshotStore interface {
	Save(ctx context.Context, snap *domain.Snapshot) error
	Load(ctx context.Context) (*domain.Snapshot, error)
}
