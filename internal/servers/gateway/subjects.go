package gateway

import "fmt"

// Subjects names the NATS subjects the gateway reads and writes.
type Subjects struct {
	Prefix string
	World  string
}

func (s Subjects) TransportConnect() string {
	return s.Prefix + ".transport.connect"
}

func (s Subjects) TransportDisconnect() string {
	return s.Prefix + ".transport.disconnect"
}

func (s Subjects) TransportInbound() string {
	return s.Prefix + ".transport.inbound"
}

// TransportSend carries encoded packets back to one transport connection.
func (s Subjects) TransportSend(connectionID string) string {
	return fmt.Sprintf("%s.transport.%s.send", s.Prefix, connectionID)
}

func (s Subjects) GatewayOutbound() string {
	return s.Prefix + ".gateway.outbound"
}

func (s Subjects) SessionConnect() string {
	return s.World + ".session.connect"
}

func (s Subjects) SessionDisconnect() string {
	return s.World + ".session.disconnect"
}

func (s Subjects) SessionInbound(sessionID string) string {
	return fmt.Sprintf("%s.session.%s.inbound", s.World, sessionID)
}
