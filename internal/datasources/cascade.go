package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// UserCascader removes a user and every engagement record they authored.
// Either everything is removed or nothing is, in which case a
// *domain.CascadeError is returned.
type UserCascader interface {
	CascadeUser(ctx context.Context, userID string) (domain.CascadeResult, error)
}

// FreetCascader removes a freet and every reaction and bookmark that references it.
type FreetCascader interface {
	CascadeFreet(ctx context.Context, freetID string) (domain.CascadeResult, error)
}

// DanglingEngagementSweeper removes engagement rows whose user or freet no
// longer exists, and statuses that expired before now.
type DanglingEngagementSweeper interface {
	SweepDanglingEngagement(ctx context.Context, now time.Time) (domain.CascadeResult, error)
}

type CascadeRepository interface {
	UserCascader
	FreetCascader
	DanglingEngagementSweeper
}
