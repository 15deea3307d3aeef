package notify_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"community-events/config"
	"community-events/internal/model"
	"community-events/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// recordingMailer pushes every send onto a channel so tests can wait for the
// worker goroutine without sleeping.
type recordingMailer struct {
	sent chan sentMail
}

func newRecordingMailer() *recordingMailer {
	return &recordingMailer{sent: make(chan sentMail, 16)}
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent <- sentMail{To: to, Subject: subject, Body: body}
	return nil
}

func (m *recordingMailer) wait(t *testing.T) sentMail {
	t.Helper()
	select {
	case mail := <-m.sent:
		return mail
	case <-time.After(time.Second):
		t.Fatal("no mail was sent")
		return sentMail{}
	}
}

func smtpConfig() config.SMTPConfig {
	return config.SMTPConfig{
		MailDomain:  "example.org",
		TeamAddress: "events-team@example.org",
	}
}

func startWorker(t *testing.T) (*notify.ChannelQueue, *recordingMailer, context.Context) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	queue := notify.NewChannelQueue(4)
	mailer := newRecordingMailer()
	worker := notify.NewWorker(queue, mailer, smtpConfig())
	require.NoError(t, worker.Start(ctx))
	return queue, mailer, ctx
}

func TestWorker_OwnerConfirmation(t *testing.T) {
	queue, mailer, ctx := startWorker(t)

	event := &model.Event{Name: "Open House", Member: "jane.doe"}
	require.NoError(t, queue.Publish(ctx, &notify.Message{Kind: notify.KindOwnerConfirmation, Event: event}))

	mail := mailer.wait(t)
	assert.Equal(t, "jane.doe@example.org", mail.To)
	assert.Equal(t, "Event application submitted", mail.Subject)
	assert.Contains(t, mail.Body, "Jane doe")
	assert.Contains(t, mail.Body, "Open House")
}

func TestWorker_TeamNotifications(t *testing.T) {
	queue, mailer, ctx := startWorker(t)

	event := &model.Event{
		Name:          "Open House",
		Member:        "jane.doe",
		EstimatedSize: "50",
		StartTime:     time.Date(2026, 9, 20, 18, 0, 0, 0, time.UTC),
	}

	t.Run("staff needed goes to the team with the headcount", func(t *testing.T) {
		require.NoError(t, queue.Publish(ctx, &notify.Message{Kind: notify.KindStaffNeeded, Event: event}))

		mail := mailer.wait(t)
		assert.Equal(t, "events-team@example.org", mail.To)
		assert.Contains(t, mail.Subject, "Staff needed")
		assert.Contains(t, mail.Body, "2 staff member(s)")
	})

	t.Run("new event request goes to the team", func(t *testing.T) {
		require.NoError(t, queue.Publish(ctx, &notify.Message{Kind: notify.KindNewEvent, Event: event}))

		mail := mailer.wait(t)
		assert.Equal(t, "events-team@example.org", mail.To)
		assert.Contains(t, mail.Subject, "New event request")
	})
}

func TestWorker_OwnerLifecycleMail(t *testing.T) {
	queue, mailer, ctx := startWorker(t)

	event := &model.Event{
		Name:      "Open House",
		Member:    "jane.doe",
		StartTime: time.Date(2026, 9, 20, 18, 0, 0, 0, time.UTC),
	}

	cases := []struct {
		kind    notify.Kind
		subject string
	}{
		{notify.KindOwnerApproved, "Event approved"},
		{notify.KindOwnerExpiring, "Event application expiring"},
		{notify.KindOwnerExpired, "Event application expired"},
		{notify.KindOwnerReminder, "Upcoming event"},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			require.NoError(t, queue.Publish(ctx, &notify.Message{Kind: tc.kind, Event: event}))

			mail := mailer.wait(t)
			assert.Equal(t, "jane.doe@example.org", mail.To)
			assert.True(t, strings.HasPrefix(mail.Subject, tc.subject), "subject %q", mail.Subject)
		})
	}
}

func TestWorker_SkipsOwnerlessMessages(t *testing.T) {
	queue, mailer, ctx := startWorker(t)

	// No member handle means no owner address; the message is dropped.
	event := &model.Event{Name: "Orphaned"}
	require.NoError(t, queue.Publish(ctx, &notify.Message{Kind: notify.KindOwnerApproved, Event: event}))

	// A follow-up message proves the worker is still draining.
	require.NoError(t, queue.Publish(ctx, &notify.Message{Kind: notify.KindNewEvent, Event: &model.Event{Name: "Next", Member: "jane.doe"}}))

	mail := mailer.wait(t)
	assert.Contains(t, mail.Subject, "New event request")
}
