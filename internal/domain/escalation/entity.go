package escalation

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel-telegram-bot/internal/pkg/clock"
)

var ErrEmptyComplaint = errors.New("complaint cannot be empty")

// Acknowledgement is returned to the guest whether or not the record was stored.
const Acknowledgement = "Your issue has been logged. A human agent will contact you shortly."

const (
	JobKind         = "escalation"
	TopicCreated    = "escalation.created"
	MaxComplaintLen = 4000
)

type Escalation struct {
	id         uuid.UUID
	telegramID int64
	sessionID  string
	complaint  string
	createdAt  time.Time
}

// NewEscalation trims the complaint and truncates it to MaxComplaintLen bytes
// on a rune boundary.
func NewEscalation(clk clock.Clock, telegramID int64, sessionID, complaint string) (*Escalation, error) {
	complaint = strings.TrimSpace(complaint)
	if complaint == "" {
		return nil, ErrEmptyComplaint
	}
	if len(complaint) > MaxComplaintLen {
		cut := MaxComplaintLen
		for cut > 0 && !utf8RuneStart(complaint[cut]) {
			cut--
		}
		complaint = complaint[:cut]
	}

	return &Escalation{
		id:         uuid.New(),
		telegramID: telegramID,
		sessionID:  sessionID,
		complaint:  complaint,
		createdAt:  clk.Now(),
	}, nil
}

func utf8RuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// CreatedEvent is the payload relayed to the support queue.
type CreatedEvent struct {
	EscalationID uuid.UUID `json:"escalation_id"`
	TelegramID   int64     `json:"telegram_id"`
	SessionID    string    `json:"session_id"`
	Complaint    string    `json:"complaint"`
	CreatedAt    time.Time `json:"created_at"`
}

func (e *Escalation) Event() CreatedEvent {
	return CreatedEvent{
		EscalationID: e.id,
		TelegramID:   e.telegramID,
		SessionID:    e.sessionID,
		Complaint:    e.complaint,
		CreatedAt:    e.createdAt,
	}
}

func (e *Escalation) EventPayload() ([]byte, error) {
	return json.Marshal(e.Event())
}

func (e *Escalation) ID() uuid.UUID        { return e.id }
func (e *Escalation) TelegramID() int64    { return e.telegramID }
func (e *Escalation) SessionID() string    { return e.sessionID }
func (e *Escalation) Complaint() string    { return e.complaint }
func (e *Escalation) CreatedAt() time.Time { return e.createdAt }
