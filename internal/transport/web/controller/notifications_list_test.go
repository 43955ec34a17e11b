package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/datasources/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationsList_ServeHTTP(t *testing.T) {
	lister := mocks.NewMockNotificationLister(t)
	lister.EXPECT().ListNotifications(mock.Anything, "user456", testTime).Return([]domain.Notification{
		{ID: "n1", Kind: domain.NotificationKindReaction, Message: "@bob reacted like to your freet", FreetID: "f1"},
	}, nil)

	ctrl := NotificationsList{Lister: lister, Now: func() time.Time { return testTime }}

	req := testContextWithUserID("user456")(httptest.NewRequest(http.MethodGet, "/v1/notifications", nil))
	rec := httptest.NewRecorder()
	ctrl.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var resp ListResponse[domain.Notification]
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "@bob reacted like to your freet", resp.Data[0].Message)
}
