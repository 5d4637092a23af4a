// Package saylink re-encodes item and spell links embedded in chat text.
package saylink

import (
	"log/slog"
	"strings"
)

const (
	// Delimiter opens and closes a link body.
	Delimiter = '\x12'

	// ServerBodySize is the width of a link body in server text.
	ServerBodySize = 56

	// WebBodySize is the width of a link body understood by the web client.
	WebBodySize = 45
)

// Encoder rewrites link bodies and reports bodies whose width is unexpected.
type Encoder struct {
	logger *slog.Logger
}

func NewEncoder(logger *slog.Logger) *Encoder {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Encoder{logger: logger}
}

// ServerToWeb narrows every link body in msg.
func (e *Encoder) ServerToWeb(msg string) string {
	return e.rewrite(msg, narrow)
}

// WebToServer widens every link body in msg.
func (e *Encoder) WebToServer(msg string) string {
	return e.rewrite(msg, widen)
}

func (e *Encoder) rewrite(msg string, convert func(string) (string, bool)) string {
	if strings.IndexByte(msg, Delimiter) < 0 {
		return msg
	}

	segments := strings.Split(msg, string(Delimiter))

	var out strings.Builder
	out.Grow(len(msg) + ServerBodySize - WebBodySize)

	for i, segment := range segments {
		if i&1 == 0 {
			out.WriteString(segment)
			continue
		}

		// an unterminated trailing link is left as literal text
		if i == len(segments)-1 {
			out.WriteByte(Delimiter)
			out.WriteString(segment)
			continue
		}

		body, converted := convert(segment)
		if !converted && len(segment) != WebBodySize && len(segment) != ServerBodySize {
			e.logger.Debug("say link body size mismatch", "size", len(segment))
		}

		out.WriteByte(Delimiter)
		out.WriteString(body)
		out.WriteByte(Delimiter)
	}

	return out.String()
}

// ServerToWeb narrows link bodies without logging.
func ServerToWeb(msg string) string {
	return NewEncoder(nil).ServerToWeb(msg)
}

// WebToServer widens link bodies without logging.
func WebToServer(msg string) string {
	return NewEncoder(nil).WebToServer(msg)
}

// narrow drops the fields the web client has no room for. Bodies shorter than a full
// server body are returned as they are.
func narrow(body string) (string, bool) {
	if len(body) < ServerBodySize {
		return body, false
	}

	var out strings.Builder
	out.Grow(WebBodySize + len(body) - ServerBodySize)

	out.WriteString(body[:31])
	out.WriteString(body[36:41])
	if body[41] == '0' {
		out.WriteByte(body[42])
	} else {
		out.WriteByte('F')
	}
	out.WriteString(body[48:])

	return out.String(), true
}

// widen expands a web body, zero filling the server-only fields. The link text that
// follows the body is carried over. Bodies too short to be a web body are returned as
// they are.
func widen(body string) (string, bool) {
	if len(body) < WebBodySize {
		return body, false
	}

	var out strings.Builder
	out.Grow(len(body) + ServerBodySize - WebBodySize)

	out.WriteString(body[:31])
	out.WriteString("00000")
	out.WriteString(body[31:36])
	out.WriteByte('0')
	out.WriteByte(body[36])
	out.WriteString("00000")
	out.WriteString(body[37:])

	return out.String(), true
}
