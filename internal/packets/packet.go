// Package packets holds the message envelope shared by the gateway and the codec.
package packets

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/GoFFXI/webcodec/internal/items"
	"github.com/GoFFXI/webcodec/internal/opcodes"
)

// Payload encodings understood on the NATS subjects.
const (
	EncodingJSON    = "json"
	EncodingMsgpack = "msgpack"
)

// Packet is one application message. Items carries the item trees that serialized-item
// records in Data refer to by index.
type Packet struct {
	Opcode opcodes.Opcode   `json:"opcode" msgpack:"opcode"`
	Data   []byte           `json:"data" msgpack:"data"`
	Items  []items.Instance `json:"items,omitempty" msgpack:"items,omitempty"`
}

func (p Packet) Size() int {
	return len(p.Data)
}

// RoutedPacket is a packet addressed to or from a transport connection.
type RoutedPacket struct {
	ConnectionID string `json:"connection_id" msgpack:"connection_id"`
	SessionID    string `json:"session_id,omitempty" msgpack:"session_id,omitempty"`
	Packet       Packet `json:"packet" msgpack:"packet"`
}

// Marshal encodes rp with the named payload encoding.
func (rp *RoutedPacket) Marshal(encoding string) ([]byte, error) {
	switch encoding {
	case EncodingJSON, "":
		return json.Marshal(rp)
	case EncodingMsgpack:
		return msgpack.Marshal(rp)
	default:
		return nil, fmt.Errorf("unknown payload encoding %q", encoding)
	}
}

// UnmarshalRoutedPacket decodes data with the named payload encoding.
func UnmarshalRoutedPacket(encoding string, data []byte) (*RoutedPacket, error) {
	var rp RoutedPacket

	var err error
	switch encoding {
	case EncodingJSON, "":
		err = json.Unmarshal(data, &rp)
	case EncodingMsgpack:
		err = msgpack.Unmarshal(data, &rp)
	default:
		return nil, fmt.Errorf("unknown payload encoding %q", encoding)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to decode routed packet: %w", err)
	}

	return &rp, nil
}
