package gateway

import (
	"time"

	"github.com/GoFFXI/webcodec/internal/opcodes"
)

const (
	ProfileWeb     = "web"
	ProfileUnknown = "unknown"
)

// ConnectEvent is published by the transport when a stream delivers its first packet.
type ConnectEvent struct {
	ConnectionID string         `json:"connection_id"`
	FirstOpcode  opcodes.Opcode `json:"first_opcode"`
	FirstLength  int            `json:"first_length"`
}

type DisconnectEvent struct {
	ConnectionID string `json:"connection_id"`
}

// SessionEvent tells the world side that a session started or ended.
type SessionEvent struct {
	SessionID    string `json:"session_id"`
	ConnectionID string `json:"connection_id"`
	Profile      string `json:"profile"`
}

type Session struct {
	ID           string
	ConnectionID string
	Web          bool
	ConnectedAt  time.Time
}

func (s *Session) Profile() string {
	if s.Web {
		return ProfileWeb
	}

	return ProfileUnknown
}

func (s *Session) event() SessionEvent {
	return SessionEvent{
		SessionID:    s.ID,
		ConnectionID: s.ConnectionID,
		Profile:      s.Profile(),
	}
}
