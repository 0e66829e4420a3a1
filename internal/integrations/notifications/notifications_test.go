package notifications

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/integrations/mailer"
	"github.com/m04kA/SMC-CourtBookingService/pkg/jwtauth"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type fakeEnqueuer struct {
	mu    sync.Mutex
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Type: task.Type()}, nil
}

type fakeSender struct {
	sent []mailer.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type countingMetrics struct {
	counts map[string]int
}

func (m *countingMetrics) IncNotification(event, result string) {
	if m.counts == nil {
		m.counts = map[string]int{}
	}
	m.counts[event+"/"+result]++
}

func sampleBooking() *domain.Booking {
	return &domain.Booking{
		ID:           "b-1",
		StudentName:  "Asha",
		StudentEmail: "asha@mietjammu.in",
		CourtID:      "c-1",
		BookingDate:  time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    "13:00",
		Status:       domain.StatusPending,
		Court:        &domain.Court{ID: "c-1", Name: "Badminton 1"},
	}
}

func TestDispatcher_EnqueuesTypedTasks(t *testing.T) {
	enq := &fakeEnqueuer{}
	m := &countingMetrics{}
	d := NewDispatcher(enq, "notifications", 3, m, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, d.OnCreated(ctx, sampleBooking()))
	require.NoError(t, d.OnApproved(ctx, sampleBooking()))
	require.NoError(t, d.OnRejected(ctx, sampleBooking()))

	require.Len(t, enq.tasks, 3)
	assert.Equal(t, TypeBookingCreated, enq.tasks[0].Type())
	assert.Equal(t, TypeBookingApproved, enq.tasks[1].Type())
	assert.Equal(t, TypeBookingRejected, enq.tasks[2].Type())

	p, err := ParsePayload(enq.tasks[0])
	require.NoError(t, err)
	assert.Equal(t, "Badminton 1", p.CourtName)
	assert.Equal(t, "2030-01-02", p.Date)
	assert.Equal(t, "13:00", p.Slot)
	assert.Equal(t, 1, m.counts[TypeBookingCreated+"/enqueued"])
}

func TestDispatcher_EnqueueFailure(t *testing.T) {
	enq := &fakeEnqueuer{err: errors.New("redis down")}
	m := &countingMetrics{}
	d := NewDispatcher(enq, "", 3, m, logger.NewNop())

	err := d.OnCreated(context.Background(), sampleBooking())
	assert.ErrorIs(t, err, ErrEnqueue)
	assert.Equal(t, 1, m.counts[TypeBookingCreated+"/failed"])
}

func TestHandler_ProcessTask(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, "admin@mietjammu.in", nil, nil, logger.NewNop())
	ctx := context.Background()

	created, err := NewTask(TypeBookingCreated, sampleBooking())
	require.NoError(t, err)
	require.NoError(t, h.ProcessTask(ctx, created))

	approved, err := NewTask(TypeBookingApproved, sampleBooking())
	require.NoError(t, err)
	require.NoError(t, h.ProcessTask(ctx, approved))

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "admin@mietjammu.in", sender.sent[0].To)
	assert.Equal(t, mailer.SubjectNewBooking, sender.sent[0].Subject)
	assert.Equal(t, "asha@mietjammu.in", sender.sent[1].To)
	assert.Equal(t, mailer.SubjectApproved, sender.sent[1].Subject)
}

func TestHandler_SkipsCreatedWithoutAdminEmail(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, "", nil, nil, logger.NewNop())

	task, err := NewTask(TypeBookingCreated, sampleBooking())
	require.NoError(t, err)
	require.NoError(t, h.ProcessTask(context.Background(), task))
	assert.Empty(t, sender.sent)
}

func TestHandler_BadPayloadSkipsRetry(t *testing.T) {
	h := NewHandler(&fakeSender{}, "admin@mietjammu.in", nil, nil, logger.NewNop())

	err := h.ProcessTask(context.Background(), asynq.NewTask(TypeBookingApproved, []byte("{")))
	assert.ErrorIs(t, err, asynq.SkipRetry)
}

func TestHandler_SendFailureIsRetried(t *testing.T) {
	h := NewHandler(&fakeSender{err: errors.New("smtp down")}, "admin@mietjammu.in", nil, nil, logger.NewNop())

	task, err := NewTask(TypeBookingRejected, sampleBooking())
	require.NoError(t, err)

	err = h.ProcessTask(context.Background(), task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

type failingLinks struct{}

func (failingLinks) Build(string) (string, string, error) {
	return "", "", ErrActionLink
}

func TestHandler_CreatedCarriesActionLinks(t *testing.T) {
	tokens := jwtauth.NewManager("secret", "court-booking")
	links := NewActionLinks("https://courts.mietjammu.in/", tokens, time.Hour)
	sender := &fakeSender{}
	h := NewHandler(sender, "admin@mietjammu.in", links, nil, logger.NewNop())

	task, err := NewTask(TypeBookingCreated, sampleBooking())
	require.NoError(t, err)
	require.NoError(t, h.ProcessTask(context.Background(), task))

	require.Len(t, sender.sent, 1)
	body := sender.sent[0].Body
	assert.Contains(t, body, "Approve: https://courts.mietjammu.in/api/v1/bookings/b-1/approve-email?token=")
	assert.Contains(t, body, "Reject:  https://courts.mietjammu.in/api/v1/bookings/b-1/reject-email?token=")
}

func TestActionLinks_TokensVerifyForTheirAction(t *testing.T) {
	tokens := jwtauth.NewManager("secret", "court-booking")
	approveURL, rejectURL, err := NewActionLinks("http://localhost:8080", tokens, time.Hour).Build("b-1")
	require.NoError(t, err)

	tokenOf := func(link string) string {
		u, err := url.Parse(link)
		require.NoError(t, err)
		return u.Query().Get("token")
	}

	assert.NoError(t, tokens.VerifyBookingAction(tokenOf(approveURL), "b-1", jwtauth.ActionApprove))
	assert.NoError(t, tokens.VerifyBookingAction(tokenOf(rejectURL), "b-1", jwtauth.ActionReject))
	assert.Error(t, tokens.VerifyBookingAction(tokenOf(approveURL), "b-1", jwtauth.ActionReject))
}

func TestHandler_CreatedWithoutLinksOnLinkFailure(t *testing.T) {
	sender := &fakeSender{}
	h := NewHandler(sender, "admin@mietjammu.in", failingLinks{}, nil, logger.NewNop())

	task, err := NewTask(TypeBookingCreated, sampleBooking())
	require.NoError(t, err)
	require.NoError(t, h.ProcessTask(context.Background(), task))

	require.Len(t, sender.sent, 1)
	assert.NotContains(t, sender.sent[0].Body, "Approve:")
}
