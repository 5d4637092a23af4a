package codec

import (
	"errors"

	"github.com/GoFFXI/webcodec/internal/packets"
	"github.com/GoFFXI/webcodec/internal/web/buffer"
	"github.com/GoFFXI/webcodec/internal/web/collection"
)

// Outcome is what a transform did with its packet.
type Outcome int

const (
	// Replaced means the packet was consumed and Packets holds its translation.
	Replaced Outcome = iota
	// Forwarded means the packet went out unchanged or through another opcode's transform.
	Forwarded
	// Dropped means nothing is sent.
	Dropped
)

func (o Outcome) String() string {
	switch o {
	case Replaced:
		return "replaced"
	case Forwarded:
		return "forwarded"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Reason explains a drop.
type Reason int

const (
	ReasonNone Reason = iota
	LengthMismatch
	LengthTooShort
	SerializationFailure
	MalformedCount
	Eaten
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case LengthMismatch:
		return "length_mismatch"
	case LengthTooShort:
		return "length_too_short"
	case SerializationFailure:
		return "serialization_failure"
	case MalformedCount:
		return "malformed_count"
	case Eaten:
		return "eaten"
	default:
		return "unknown"
	}
}

// Result is the output of one transform.
type Result struct {
	Outcome Outcome
	Reason  Reason
	Packets []packets.Packet
	Err     error
}

func replaced(pkts ...packets.Packet) Result {
	return Result{Outcome: Replaced, Packets: pkts}
}

func passthrough(p packets.Packet) Result {
	return Result{Outcome: Forwarded, Packets: []packets.Packet{p}}
}

func dropped(err error) Result {
	return Result{Outcome: Dropped, Reason: classify(err), Err: err}
}

func eaten() Result {
	return Result{Outcome: Dropped, Reason: Eaten}
}

func classify(err error) Reason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, buffer.ErrLengthMismatch):
		return LengthMismatch
	case errors.Is(err, buffer.ErrLengthTooShort), errors.Is(err, buffer.ErrTruncated):
		return LengthTooShort
	case errors.Is(err, collection.ErrMalformedCount):
		return MalformedCount
	default:
		return SerializationFailure
	}
}
