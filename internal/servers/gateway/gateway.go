// Package gateway connects the web transport to the world server over NATS, running every
// packet through the web codec on the way.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/GoFFXI/webcodec/internal/config"
	"github.com/GoFFXI/webcodec/internal/web/codec"
)

var (
	ErrUnknownConnection   = errors.New("unknown connection")
	ErrDuplicateConnection = errors.New("connection already has a session")
)

// Directions selects which halves of the gateway a process serves.
type Directions struct {
	Inbound  bool
	Outbound bool
}

// ParseRole maps a process role to the directions it serves.
func ParseRole(role string) (Directions, error) {
	switch strings.ToLower(role) {
	case "gateway":
		return Directions{Inbound: true, Outbound: true}, nil
	case "inbound":
		return Directions{Inbound: true}, nil
	case "outbound":
		return Directions{Outbound: true}, nil
	default:
		return Directions{}, fmt.Errorf("invalid role: '%s'", role)
	}
}

func (d Directions) String() string {
	switch {
	case d.Inbound && d.Outbound:
		return "gateway"
	case d.Inbound:
		return "inbound"
	case d.Outbound:
		return "outbound"
	default:
		return "none"
	}
}

type Publisher interface {
	Publish(subject string, data []byte) error
}

type Subscriber interface {
	Subscribe(subject string, cb nats.MsgHandler) (*nats.Subscription, error)
}

type Gateway struct {
	codec         *codec.Codec
	publisher     Publisher
	logger        *slog.Logger
	subjects      Subjects
	encoding      string
	directions    Directions
	sessions      *xsync.MapOf[string, *Session]
	subscriptions []*nats.Subscription
	stopOnce      sync.Once
	newSessionID  func() string
}

func New(c *codec.Codec, publisher Publisher, cfg *config.Config, logger *slog.Logger, directions Directions) *Gateway {
	return &Gateway{
		codec:     c,
		publisher: publisher,
		logger:    logger.With("component", "gateway"),
		subjects: Subjects{
			Prefix: cfg.NATSSubjectPrefix,
			World:  cfg.NATSWorldSubjectPrefix,
		},
		encoding:     cfg.NATSPayloadEncoding,
		directions:   directions,
		sessions:     xsync.NewMapOf[string, *Session](),
		newSessionID: uuid.NewString,
	}
}

func (g *Gateway) Logger() *slog.Logger {
	return g.logger
}

func (g *Gateway) Subjects() Subjects {
	return g.subjects
}

// Session returns the session bound to a transport connection.
func (g *Gateway) Session(connectionID string) (*Session, bool) {
	return g.sessions.Load(connectionID)
}

func (g *Gateway) SessionCount() int {
	return g.sessions.Size()
}

// Start subscribes to the subjects for the configured directions and drains them once ctx
// is cancelled. wg is released after draining.
func (g *Gateway) Start(ctx context.Context, wg *sync.WaitGroup, subscriber Subscriber) error {
	handlers := make(map[string]func(context.Context, []byte) error)

	if g.directions.Inbound {
		handlers[g.subjects.TransportConnect()] = g.HandleConnect
		handlers[g.subjects.TransportDisconnect()] = g.HandleDisconnect
		handlers[g.subjects.TransportInbound()] = g.HandleInbound
	}

	if g.directions.Outbound {
		handlers[g.subjects.GatewayOutbound()] = g.HandleOutbound
	}

	for subject, handler := range handlers {
		g.Logger().Info("subscribing to NATS subject", "subject", subject)

		subscription, err := subscriber.Subscribe(subject, g.msgHandler(ctx, handler))
		if err != nil {
			g.Stop()
			return fmt.Errorf("could not subscribe to NATS subject %s: %w", subject, err)
		}

		g.subscriptions = append(g.subscriptions, subscription)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		g.Stop()
	}()

	return nil
}

// Stop drains every subscription. In-flight messages finish first. Only the first call
// has any effect.
func (g *Gateway) Stop() {
	g.stopOnce.Do(func() {
		for _, subscription := range g.subscriptions {
			if subscription == nil {
				continue
			}

			if err := subscription.Drain(); err != nil {
				g.Logger().Warn("failed to drain subscription", "subject", subscription.Subject, "error", err)
			}
		}

		g.subscriptions = nil
	})
}

func (g *Gateway) msgHandler(ctx context.Context, handler func(context.Context, []byte) error) nats.MsgHandler {
	return func(msg *nats.Msg) {
		g.Logger().Debug("received message", "natsSubject", msg.Subject, "size", len(msg.Data))

		if err := handler(ctx, msg.Data); err != nil {
			g.Logger().Warn("failed to handle message", "natsSubject", msg.Subject, "error", err)
			g.dump("unhandled message", msg.Data)
		}
	}
}
