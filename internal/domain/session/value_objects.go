package session

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmptyAppName      = errors.New("app name cannot be empty")
	ErrInvalidExternalID = errors.New("external id must be non-zero")
	ErrInvalidState      = errors.New("session state is not valid JSON")
)

// MaxHistory bounds the stored conversation so state rows stay small.
const MaxHistory = 40

const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Key identifies a session. A chat maps to exactly one session, so UserID and
// SessionID both carry the chat id.
type Key struct {
	AppName   string
	UserID    string
	SessionID string
}

func NewKey(appName string, externalID int64) (Key, error) {
	appName = strings.TrimSpace(appName)
	if appName == "" {
		return Key{}, ErrEmptyAppName
	}
	if externalID == 0 {
		return Key{}, ErrInvalidExternalID
	}
	id := strconv.FormatInt(externalID, 10)
	return Key{AppName: appName, UserID: id, SessionID: id}, nil
}

type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type State struct {
	History []Message `json:"history"`
}

func DecodeState(raw []byte) (State, error) {
	var st State
	if len(raw) == 0 {
		return st, nil
	}
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, ErrInvalidState
	}
	return st, nil
}

func (s State) Encode() ([]byte, error) {
	if s.History == nil {
		s.History = []Message{}
	}
	return json.Marshal(s)
}
