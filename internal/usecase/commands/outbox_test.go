//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel-telegram-bot/internal/pkg/clock"
	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase/commands"
	"hotel-telegram-bot/internal/usecase/shared"
	commandsmock "hotel-telegram-bot/tests/mock/commands"
)

func TestRelayPending(t *testing.T) {
	ok := &shared.NotificationJob{ID: uuid.New(), Topic: "escalation.created", Payload: []byte(`{"a":1}`)}
	flaky := &shared.NotificationJob{ID: uuid.New(), Topic: "escalation.created", Payload: []byte(`{"a":2}`), Attempts: 1}
	exhausted := &shared.NotificationJob{ID: uuid.New(), Topic: "escalation.created", Payload: []byte(`{"a":3}`), Attempts: commands.MaxDeliveryAttempts - 1}

	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	publisher := commandsmock.NewMockEventPublisher(ctrl)
	relay := commands.NewOutboxRelay(m.uow, publisher, clock.NewMockClock(fixedNow), 10)

	m.expectWithin()
	m.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), fixedNow, int32(10)).
		Return([]*shared.NotificationJob{ok, flaky, exhausted}, nil)

	publisher.EXPECT().Publish(gomock.Any(), ok.Topic, ok.Payload).Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), flaky.Topic, flaky.Payload).Return(errs.New("broker down"))
	publisher.EXPECT().Publish(gomock.Any(), exhausted.Topic, exhausted.Payload).Return(errs.New("broker down"))

	m.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), ok.ID, shared.JobStatusSent, (*string)(nil)).Return(nil)
	m.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), flaky.ID, shared.JobStatusQueued, gomock.Not(gomock.Nil())).Return(nil)
	m.notifications.EXPECT().UpdateJobStatus(gomock.Any(), gomock.Any(), exhausted.ID, shared.JobStatusFailed, gomock.Not(gomock.Nil())).Return(nil)

	res, err := relay.RelayPending(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &commands.RelayResult{Claimed: 3, Sent: 1, Failed: 2}, res)
}

func TestRelayPending_NothingQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	publisher := commandsmock.NewMockEventPublisher(ctrl)
	relay := commands.NewOutboxRelay(m.uow, publisher, clock.NewMockClock(fixedNow), 0)

	m.expectWithin()
	m.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), fixedNow, int32(20)).Return(nil, nil)

	res, err := relay.RelayPending(context.Background())

	require.NoError(t, err)
	assert.Zero(t, res.Claimed)
}

func TestRelayPending_ClaimFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTxMocks(ctrl)
	publisher := commandsmock.NewMockEventPublisher(ctrl)
	relay := commands.NewOutboxRelay(m.uow, publisher, clock.NewMockClock(fixedNow), 5)

	m.expectWithin()
	m.notifications.EXPECT().ClaimQueued(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errs.New("relation does not exist"))

	res, err := relay.RelayPending(context.Background())

	assert.Nil(t, res)
	assert.True(t, errs.Is(err, errs.ErrPersistence))
}
