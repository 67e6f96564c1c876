//go:build unit

package rules_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hotel-telegram-bot/internal/agent"
	"hotel-telegram-bot/internal/agent/rules"
	"hotel-telegram-bot/internal/domain/session"
	"hotel-telegram-bot/internal/pkg/errs"
	"hotel-telegram-bot/internal/usecase/tools"
)

type mockInvoker struct {
	mock.Mock
}

func (m *mockInvoker) Invoke(ctx context.Context, name string, inv tools.Invocation) (tools.Result, error) {
	args := m.Called(ctx, name, inv)
	res, _ := args.Get(0).(tools.Result)
	return res, args.Error(1)
}

var caller = tools.Caller{TelegramID: 42, SessionID: "42"}

var roomTypes = tools.Result{
	"status": "success",
	"room_types": []map[string]any{
		{"room_type": "Deluxe", "price": 250.0, "available": int64(1)},
		{"room_type": "Standard", "price": 150.0, "available": int64(2)},
		{"room_type": "Suite", "price": 400.0, "available": int64(0)},
	},
}

func withArgs(args map[string]any) any {
	return mock.MatchedBy(func(inv tools.Invocation) bool {
		return assert.ObjectsAreEqual(caller, inv.Caller) && assert.ObjectsAreEqual(args, inv.Args)
	})
}

const (
	askRoomType = "Which room type would you like? We offer Deluxe, Standard, Suite."
	askDates    = "Please tell me your check-in and check-out dates in YYYY-MM-DD format."
	askArea     = "I can recommend places downtown or near the beach. Which area are you interested in?"
	booked      = "Successfully booked a Standard room. Booking #7: 2025-07-01 to 2025-07-04 (3 night(s)), total price 450.00."
)

// turn builds a turn whose history holds the given exchanges as
// alternating user and model messages.
func turn(text string, exchanges ...string) agent.Turn {
	key, _ := session.NewKey("HotelTelegramBot", 42)
	s := session.NewSession(key, time.Now())
	var history []session.Message
	for i, e := range exchanges {
		role := session.RoleUser
		if i%2 == 1 {
			role = session.RoleModel
		}
		history = append(history, session.Message{Role: role, Text: e})
	}
	s.ReplaceHistory(history, time.Now())
	return agent.Turn{Session: s, Caller: caller, Text: text}
}

func TestRespond_BookRoom(t *testing.T) {
	inv := new(mockInvoker)
	inv.On("Invoke", mock.Anything, tools.NameListRoomTypes, mock.Anything).Return(roomTypes, nil)
	inv.On("Invoke", mock.Anything, tools.NameBookRoom, withArgs(map[string]any{
		"room_type": "Standard", "check_in_date": "2025-07-01", "check_out_date": "2025-07-04",
	})).Return(tools.Result{
		"status": "success", "message": "Successfully booked a Standard room.",
		"booking_id": int32(7), "total_price": 450.0, "nights": 3,
	}, nil)

	reply, err := rules.New(inv).Respond(context.Background(), turn("Please book a standard room from 2025-07-01 to 2025-07-04"))

	require.NoError(t, err)
	assert.Equal(t, booked, reply.Text)
	assert.Len(t, reply.History, 4)
	inv.AssertExpectations(t)
}

func TestRespond_BookingFailureMessageIsRelayed(t *testing.T) {
	inv := new(mockInvoker)
	inv.On("Invoke", mock.Anything, tools.NameListRoomTypes, mock.Anything).Return(roomTypes, nil)
	inv.On("Invoke", mock.Anything, tools.NameBookRoom, mock.Anything).
		Return(tools.Result{"status": "error", "message": "User not found."}, nil)

	reply, err := rules.New(inv).Respond(context.Background(), turn("reserve a suite 2025-07-01 2025-07-02"))

	require.NoError(t, err)
	assert.Equal(t, "User not found.", reply.Text)
}

func TestRespond_AvailabilityCollectsDetailsAcrossMessages(t *testing.T) {
	inv := new(mockInvoker)
	inv.On("Invoke", mock.Anything, tools.NameListRoomTypes, mock.Anything).Return(roomTypes, nil)
	inv.On("Invoke", mock.Anything, tools.NameCheckAvailability, withArgs(map[string]any{
		"room_type": "Deluxe", "check_in_date": "2025-08-10", "check_out_date": "2025-08-12",
	})).Return(tools.Result{
		"status": "success", "available_count": 1, "price": 250.0, "nights": 2, "estimated_total": 500.0,
	}, nil)

	reply, err := rules.New(inv).Respond(context.Background(),
		turn("2025-08-10 to 2025-08-12",
			"is anything available?", askRoomType,
			"deluxe please", askDates))

	require.NoError(t, err)
	assert.Contains(t, reply.Text, "We have 1 Deluxe room(s) available at 250.00 per night")
	assert.Contains(t, reply.Text, "come to 500.00")
	inv.AssertExpectations(t)
}

func TestRespond_AsksForMissingDetails(t *testing.T) {
	inv := new(mockInvoker)
	inv.On("Invoke", mock.Anything, tools.NameListRoomTypes, mock.Anything).Return(roomTypes, nil)

	a := rules.New(inv)

	reply, err := a.Respond(context.Background(), turn("I'd like to book a room"))
	require.NoError(t, err)
	assert.Equal(t, askRoomType, reply.Text)

	reply, err = a.Respond(context.Background(), turn("book the suite"))
	require.NoError(t, err)
	assert.Equal(t, askDates, reply.Text)

	inv.AssertNotCalled(t, "Invoke", mock.Anything, tools.NameBookRoom, mock.Anything)
}

func TestRespond_FollowUpAfterCompletedBookingDoesNotRebook(t *testing.T) {
	inv := new(mockInvoker)
	a := rules.New(inv)

	for _, text := range []string{"thanks", "ok", "hello 2025-07-01 2025-07-04"} {
		reply, err := a.Respond(context.Background(),
			turn(text, "Book a Standard room from 2025-07-01 to 2025-07-04", booked))
		require.NoError(t, err)
		assert.Contains(t, reply.Text, "I'm the hotel assistant")
	}
	inv.AssertNotCalled(t, "Invoke", mock.Anything, tools.NameBookRoom, mock.Anything)
}

func TestRespond_FollowUpStopsAtAnsweredRequest(t *testing.T) {
	inv := new(mockInvoker)
	inv.On("Invoke", mock.Anything, tools.NameListRoomTypes, mock.Anything).Return(roomTypes, nil)

	// the earlier booking was answered; only the later prompt is still open
	reply, err := rules.New(inv).Respond(context.Background(), turn("standard",
		"Book a Standard room from 2025-07-01 to 2025-07-04", booked,
		"is anything available?", askRoomType))

	require.NoError(t, err)
	assert.Equal(t, askDates, reply.Text)
	inv.AssertNotCalled(t, "Invoke", mock.Anything, tools.NameBookRoom, mock.Anything)
	inv.AssertNotCalled(t, "Invoke", mock.Anything, tools.NameCheckAvailability, mock.Anything)
}

func TestRespond_Complaint(t *testing.T) {
	inv := new(mockInvoker)
	inv.On("Invoke", mock.Anything, tools.NameEscalateToHuman, withArgs(map[string]any{
		"complaint": "The shower is broken and I want a manager",
	})).Return(tools.Result{
		"status": "success", "message": "Your issue has been logged. A human agent will contact you shortly.",
	}, nil)

	reply, err := rules.New(inv).Respond(context.Background(), turn("The shower is broken and I want a manager"))

	require.NoError(t, err)
	assert.Equal(t, "Your issue has been logged. A human agent will contact you shortly.", reply.Text)
}

func TestRespond_Attractions(t *testing.T) {
	inv := new(mockInvoker)
	inv.On("Invoke", mock.Anything, tools.NameGetAttractions, withArgs(map[string]any{"location": "beach"})).
		Return(tools.Result{"attractions": []string{"Sunny Beach Pier", "Boardwalk", "Marine Life Aquarium"}}, nil)

	a := rules.New(inv)

	reply, err := a.Respond(context.Background(), turn("any attractions nearby?"))
	require.NoError(t, err)
	assert.Equal(t, askArea, reply.Text)

	reply, err = a.Respond(context.Background(), turn("the beach", "any attractions nearby?", askArea))
	require.NoError(t, err)
	assert.Equal(t, "Nearby attractions in the beach area: Sunny Beach Pier, Boardwalk, Marine Life Aquarium.", reply.Text)
}

func TestRespond_RoomTypes(t *testing.T) {
	inv := new(mockInvoker)
	inv.On("Invoke", mock.Anything, tools.NameListRoomTypes, mock.Anything).Return(roomTypes, nil)

	reply, err := rules.New(inv).Respond(context.Background(), turn("What are your prices?"))

	require.NoError(t, err)
	assert.Equal(t, "Our room types:\n- Deluxe: 250.00 per night (1 available)\n- Standard: 150.00 per night (2 available)\n- Suite: 400.00 per night (0 available)", reply.Text)
}

func TestRespond_GreetingAndUnknown(t *testing.T) {
	inv := new(mockInvoker)
	a := rules.New(inv)

	for _, text := range []string{"hello", "/start", "qwerty"} {
		reply, err := a.Respond(context.Background(), turn(text))
		require.NoError(t, err)
		assert.Contains(t, reply.Text, "I'm the hotel assistant")
	}
	inv.AssertNotCalled(t, "Invoke", mock.Anything, mock.Anything, mock.Anything)
}

func TestRespond_ToolFailurePropagates(t *testing.T) {
	inv := new(mockInvoker)
	storeDown := errs.Mark(errs.New("dial tcp"), errs.ErrUpstreamUnavailable)
	inv.On("Invoke", mock.Anything, tools.NameListRoomTypes, mock.Anything).Return(nil, storeDown)

	reply, err := rules.New(inv).Respond(context.Background(), turn("book a deluxe room 2025-07-01 2025-07-02"))

	assert.Nil(t, reply)
	assert.True(t, errs.Is(err, errs.ErrUpstreamUnavailable))
}
