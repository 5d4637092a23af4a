package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/web/codec"
)

// HandleConnect opens a session for a new transport connection and announces it to the
// world. The first packet decides whether the stream speaks the web protocol.
func (g *Gateway) HandleConnect(_ context.Context, data []byte) error {
	var event ConnectEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode connect event: %w", err)
	}

	session := &Session{
		ID:           g.newSessionID(),
		ConnectionID: event.ConnectionID,
		Web:          opcodes.WebSignature.Matches(event.FirstOpcode, event.FirstLength),
		ConnectedAt:  time.Now(),
	}

	if _, loaded := g.sessions.LoadOrStore(event.ConnectionID, session); loaded {
		return fmt.Errorf("%w: %s", ErrDuplicateConnection, event.ConnectionID)
	}

	g.Logger().Info("session opened",
		"connectionID", session.ConnectionID,
		"sessionID", session.ID,
		"profile", session.Profile(),
		"firstOpcode", event.FirstOpcode.String(),
	)

	return g.publishEvent(g.subjects.SessionConnect(), session.event())
}

func (g *Gateway) HandleDisconnect(_ context.Context, data []byte) error {
	var event DisconnectEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to decode disconnect event: %w", err)
	}

	session, ok := g.sessions.LoadAndDelete(event.ConnectionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownConnection, event.ConnectionID)
	}

	g.Logger().Info("session closed",
		"connectionID", session.ConnectionID,
		"sessionID", session.ID,
		"duration", time.Since(session.ConnectedAt).String(),
	)

	return g.publishEvent(g.subjects.SessionDisconnect(), session.event())
}

// HandleInbound decodes a client packet and hands the result to the world session.
func (g *Gateway) HandleInbound(ctx context.Context, data []byte) error {
	rp, err := packets.UnmarshalRoutedPacket(g.encoding, data)
	if err != nil {
		return err
	}

	session, ok := g.sessions.Load(rp.ConnectionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownConnection, rp.ConnectionID)
	}

	out := []packets.Packet{rp.Packet}
	if session.Web {
		out = g.codec.Decode(ctx, rp.Packet).Packets
	}

	subject := g.subjects.SessionInbound(session.ID)
	for _, p := range out {
		if err = g.publishPacket(subject, rp.ConnectionID, session.ID, p); err != nil {
			return err
		}
	}

	return nil
}

// HandleOutbound encodes a world packet for the client. Connections this process has no
// session for are treated as web connections, which is what an outbound-only role sees.
func (g *Gateway) HandleOutbound(ctx context.Context, data []byte) error {
	rp, err := packets.UnmarshalRoutedPacket(g.encoding, data)
	if err != nil {
		return err
	}

	var res codec.Result
	if session, ok := g.sessions.Load(rp.ConnectionID); ok && !session.Web {
		res = codec.Result{Outcome: codec.Forwarded, Packets: []packets.Packet{rp.Packet}}
	} else {
		res = g.codec.Encode(ctx, rp.Packet)
	}

	subject := g.subjects.TransportSend(rp.ConnectionID)
	for _, p := range res.Packets {
		if err = g.publishPacket(subject, rp.ConnectionID, rp.SessionID, p); err != nil {
			return err
		}
	}

	return nil
}

func (g *Gateway) publishPacket(subject, connectionID, sessionID string, p packets.Packet) error {
	rp := packets.RoutedPacket{
		ConnectionID: connectionID,
		SessionID:    sessionID,
		Packet:       p,
	}

	payload, err := rp.Marshal(g.encoding)
	if err != nil {
		return err
	}

	g.Logger().Debug("publishing packet", "natsSubject", subject, "opcode", p.Opcode.String(), "size", len(p.Data))

	if err = g.publisher.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}

func (g *Gateway) publishEvent(subject string, event SessionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode session event: %w", err)
	}

	if err = g.publisher.Publish(subject, payload); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", subject, err)
	}

	return nil
}

func (g *Gateway) dump(msg string, data []byte) {
	if g.logger.Enabled(context.Background(), slog.LevelDebug) {
		g.logger.Debug(msg, "dump", spew.Sdump(data))
	}
}
