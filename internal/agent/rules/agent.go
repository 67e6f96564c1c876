package rules

import (
	"context"
	"fmt"
	"strings"

	"hotel-telegram-bot/internal/agent"
	"hotel-telegram-bot/internal/domain/session"
	"hotel-telegram-bot/internal/usecase/tools"
)

const (
	helpText = "Hello! I'm the hotel assistant. I can check room availability, book a room, " +
		"list our room types, suggest nearby attractions, or pass a complaint on to our staff. " +
		"For bookings, tell me the room type and your dates, for example: " +
		"\"Book a Standard room from 2025-07-01 to 2025-07-04\"."
	askDates    = "Please tell me your check-in and check-out dates in YYYY-MM-DD format."
	askArea     = "I can recommend places downtown or near the beach. Which area are you interested in?"
	noRoomTypes = "We have no rooms listed at the moment."
)

// Agent answers with keyword intents and fills booking details from the
// previous user message when the current one only carries part of them.
type Agent struct {
	tools agent.ToolInvoker
}

func New(invoker agent.ToolInvoker) *Agent {
	return &Agent{tools: invoker}
}

func (a *Agent) Respond(ctx context.Context, turn agent.Turn) (*agent.Reply, error) {
	text, err := a.reply(ctx, turn)
	if err != nil {
		return nil, err
	}
	return agent.NewReply(turn, text), nil
}

func (a *Agent) reply(ctx context.Context, turn agent.Turn) (string, error) {
	current := turn.Text
	combined := current

	in := classify(current)
	if in == intentNone || (in == intentGreeting && isoDate.MatchString(current)) {
		if pi, earlier := pendingIntent(turn.Session); pi != intentNone {
			in = pi
			combined = current + " " + earlier
		}
	}

	inv := tools.Invocation{Caller: turn.Caller}
	switch in {
	case intentComplaint:
		inv.Args = map[string]any{"complaint": current}
		res, err := a.tools.Invoke(ctx, tools.NameEscalateToHuman, inv)
		if err != nil {
			return "", err
		}
		return message(res), nil

	case intentBook, intentAvailability:
		return a.stayReply(ctx, in, combined, inv)

	case intentRoomTypes:
		res, err := a.tools.Invoke(ctx, tools.NameListRoomTypes, inv)
		if err != nil {
			return "", err
		}
		return formatRoomTypes(res), nil

	case intentAttractions:
		area, ok := extractArea(combined, tools.AttractionAreas())
		if !ok {
			return askArea, nil
		}
		inv.Args = map[string]any{"location": area}
		res, err := a.tools.Invoke(ctx, tools.NameGetAttractions, inv)
		if err != nil {
			return "", err
		}
		return formatAttractions(area, res), nil

	default:
		return helpText, nil
	}
}

func (a *Agent) stayReply(ctx context.Context, in intent, text string, inv tools.Invocation) (string, error) {
	types, err := a.tools.Invoke(ctx, tools.NameListRoomTypes, inv)
	if err != nil {
		return "", err
	}
	labels := roomTypeLabels(types)

	roomType, ok := extractRoomType(text, labels)
	if !ok {
		if len(labels) == 0 {
			return noRoomTypes, nil
		}
		return fmt.Sprintf("%s We offer %s.", askRoomTypePrefix, strings.Join(labels, ", ")), nil
	}
	checkIn, checkOut, ok := extractDates(text)
	if !ok {
		return askDates, nil
	}

	inv.Args = map[string]any{
		"room_type":      roomType,
		"check_in_date":  checkIn,
		"check_out_date": checkOut,
	}

	if in == intentAvailability {
		res, err := a.tools.Invoke(ctx, tools.NameCheckAvailability, inv)
		if err != nil {
			return "", err
		}
		if res["status"] != tools.StatusSuccess {
			return message(res), nil
		}
		return fmt.Sprintf("Good news! We have %v %s room(s) available at %.2f per night. "+
			"%v night(s) from %s to %s come to %.2f. Would you like me to book one?",
			res["available_count"], roomType, toFloat(res["price"]),
			res["nights"], checkIn, checkOut, toFloat(res["estimated_total"])), nil
	}

	res, err := a.tools.Invoke(ctx, tools.NameBookRoom, inv)
	if err != nil {
		return "", err
	}
	if res["status"] != tools.StatusSuccess {
		return message(res), nil
	}
	return fmt.Sprintf("%s Booking #%v: %s to %s (%v night(s)), total price %.2f.",
		message(res), res["booking_id"], checkIn, checkOut, res["nights"], toFloat(res["total_price"])), nil
}

// maxFollowUps bounds how many earlier user messages can complete a request.
const maxFollowUps = 3

const askRoomTypePrefix = "Which room type would you like?"

func isSlotPrompt(text string) bool {
	return text == askDates || text == askArea || strings.HasPrefix(text, askRoomTypePrefix)
}

// pendingIntent returns an unfinished booking, availability or attractions
// request together with the user text collected on the way. A request is
// only pending while every model reply since it asked for a missing detail.
func pendingIntent(s *session.Session) (intent, string) {
	if s == nil {
		return intentNone, ""
	}
	history := s.History()

	var collected []string
	for i := len(history) - 1; i >= 0 && len(collected) < maxFollowUps; i-- {
		if history[i].Role != session.RoleUser {
			if !isSlotPrompt(history[i].Text) {
				return intentNone, ""
			}
			continue
		}
		text := history[i].Text
		collected = append(collected, text)

		switch in := classify(text); in {
		case intentBook, intentAvailability, intentAttractions:
			return in, strings.Join(collected, " ")
		case intentNone:
			continue
		default:
			return intentNone, ""
		}
	}
	return intentNone, ""
}

func message(res tools.Result) string {
	msg, _ := res["message"].(string)
	return msg
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func roomTypeLabels(res tools.Result) []string {
	entries, _ := res["room_types"].([]map[string]any)
	labels := make([]string, 0, len(entries))
	for _, e := range entries {
		if label, ok := e["room_type"].(string); ok {
			labels = append(labels, label)
		}
	}
	return labels
}

func formatRoomTypes(res tools.Result) string {
	entries, _ := res["room_types"].([]map[string]any)
	if len(entries) == 0 {
		return noRoomTypes
	}

	var sb strings.Builder
	sb.WriteString("Our room types:")
	for _, e := range entries {
		fmt.Fprintf(&sb, "\n- %v: %.2f per night (%v available)", e["room_type"], toFloat(e["price"]), e["available"])
	}
	return sb.String()
}

func formatAttractions(area string, res tools.Result) string {
	names, _ := res["attractions"].([]string)
	return fmt.Sprintf("Nearby attractions in the %s area: %s.", area, strings.Join(names, ", "))
}
