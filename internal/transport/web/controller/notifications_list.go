package controller

import (
	"net/http"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/datasources"
	"github.com/jbeshir/fritter-engagement/internal/domain"
)

// NotificationsList handles GET /v1/notifications for the acting user.
// Expired notifications are never returned.
type NotificationsList struct {
	Lister datasources.NotificationLister
	Now    func() time.Time
}

func (c NotificationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}

	notifications, err := c.Lister.ListNotifications(ctx, domain.UserIDFromContext(ctx), now().UTC())
	if err != nil {
		respondError(ctx, w, "unable to list notifications", err)
		return
	}
	if notifications == nil {
		notifications = []domain.Notification{}
	}

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(ctx, w, http.StatusOK, ListResponse[domain.Notification]{Data: notifications})
}
