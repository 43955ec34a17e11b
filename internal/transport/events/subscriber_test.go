package events

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jbeshir/fritter-engagement/internal/command"
	"github.com/jbeshir/fritter-engagement/internal/command/mocks"
	"github.com/jbeshir/fritter-engagement/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestParseLifecycleID(t *testing.T) {
	cases := []struct {
		name     string
		data     string
		expected string
		wantErr  bool
	}{
		{name: "json", data: `{"user_id":"u1"}`, expected: "u1"},
		{name: "json_with_extra_fields", data: `{"user_id":"u1","deleted_at":"2024-05-01T00:00:00Z"}`, expected: "u1"},
		{name: "bare_id", data: "u1\n", expected: "u1"},
		{name: "empty", data: "  ", wantErr: true},
		{name: "wrong_field", data: `{"freet_id":"f1"}`, wantErr: true},
		{name: "malformed_json", data: `{"user_id":`, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			id, err := ParseLifecycleID([]byte(c.data), "user_id")
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, id)
		})
	}
}

type fakeDelivery struct {
	subject string
	data    string

	acked     bool
	termed    bool
	nakDelay  time.Duration
	nakCalled bool
}

func (d *fakeDelivery) Subject() string { return d.subject }
func (d *fakeDelivery) Data() []byte { return []byte(d.data) }
func (d *fakeDelivery) Ack() error { d.acked = true; return nil }
func (d *fakeDelivery) Term() error { d.termed = true; return nil }

func (d *fakeDelivery) NakWithDelay(delay time.Duration) error {
	d.nakCalled = true
	d.nakDelay = delay
	return nil
}

func TestLifecycleSubscriber_Handle(t *testing.T) {
	cases := []struct {
		name        string
		subject     string
		data        string
		expectUser  string
		expectFreet string
		cmdErr      error
		wantAck     bool
		wantTerm    bool
		wantNak     bool
	}{
		{
			name:       "user_cascade_acked",
			subject:    SubjectUserDeleted,
			data:       `{"user_id":"u1"}`,
			expectUser: "u1",
			wantAck:    true,
		},
		{
			name:       "failed_user_cascade_redelivered",
			subject:    SubjectUserDeleted,
			data:       `{"user_id":"u1"}`,
			expectUser: "u1",
			cmdErr:     errors.New("deadlock"),
			wantNak:    true,
		},
		{
			name:        "freet_cascade_without_ownership_check",
			subject:     SubjectFreetDeleted,
			data:        "f1",
			expectFreet: "f1",
			wantAck:     true,
		},
		{
			name:        "failed_freet_cascade_redelivered",
			subject:     SubjectFreetDeleted,
			data:        "f1",
			expectFreet: "f1",
			cmdErr:      errors.New("store down"),
			wantNak:     true,
		},
		{
			name:     "malformed_event_terminated",
			subject:  SubjectFreetDeleted,
			data:     `{"user_id":"u1"}`,
			wantTerm: true,
		},
		{
			name:     "unknown_subject_terminated",
			subject:  "freet.created",
			data:     "f1",
			wantTerm: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			deleteUser := mocks.NewMockCommand[command.DeleteUserRequest, domain.CascadeResult](t)
			deleteFreet := mocks.NewMockCommand[command.DeleteFreetRequest, domain.CascadeResult](t)
			if tc.expectUser != "" {
				deleteUser.EXPECT().
					Execute(mock.Anything, command.DeleteUserRequest{UserID: tc.expectUser}).
					Return(domain.CascadeResult{Reactions: 2}, tc.cmdErr)
			}
			if tc.expectFreet != "" {
				deleteFreet.EXPECT().
					Execute(mock.Anything, command.DeleteFreetRequest{FreetID: tc.expectFreet}).
					Return(domain.CascadeResult{}, tc.cmdErr)
			}

			msg := &fakeDelivery{subject: tc.subject, data: tc.data}
			sut := &LifecycleSubscriber{DeleteUser: deleteUser, DeleteFreet: deleteFreet}
			sut.Handle(testContext(), msg)

			assert.Equal(t, tc.wantAck, msg.acked)
			assert.Equal(t, tc.wantTerm, msg.termed)
			assert.Equal(t, tc.wantNak, msg.nakCalled)
			if tc.wantNak {
				assert.Equal(t, RedeliveryDelay, msg.nakDelay)
			}
		})
	}
}

func TestLifecycleSubscriber_HandleUserDeleted_MalformedIsNotRetryable(t *testing.T) {
	sut := &LifecycleSubscriber{DeleteUser: mocks.NewMockCommand[command.DeleteUserRequest, domain.CascadeResult](t)}

	err := sut.HandleUserDeleted(testContext(), []byte("  "))
	require.ErrorIs(t, err, ErrMalformedEvent)
	require.ErrorIs(t, err, ErrEmptyLifecycleID)
}
