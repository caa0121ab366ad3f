package settlement

import (
	"context"

	"github.com/drxlabs/drx-backend/internal/model"
)

// INotifier pokes the external settlement agent after a request is
// approved. Delivery is best-effort; the agent also polls the list
// endpoints, so a lost notification only delays settlement.
type INotifier interface {
	NotifyApproved(ctx context.Context, kind model.RequestKind, requestID string)
}
