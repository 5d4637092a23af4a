package codec

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/GoFFXI/webcodec/internal/opcodes"
)

// overridesFile is the TOML layout of a codec overrides file:
//
//	[disabled]
//	encode = ["OP_Track", "OP_GuildsList"]
//	decode = ["OP_WhoAllRequest"]
type overridesFile struct {
	Disabled struct {
		Encode []string `toml:"encode"`
		Decode []string `toml:"decode"`
	} `toml:"disabled"`
}

// LoadOverridesFile reads the opcodes to disable from path and returns them as options.
// An empty path yields no options.
func LoadOverridesFile(path string) ([]Option, error) {
	if path == "" {
		return nil, nil
	}

	var raw overridesFile
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load codec overrides: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load codec overrides: unknown keys %v", undecoded)
	}

	encode, err := parseOpcodes(raw.Disabled.Encode)
	if err != nil {
		return nil, fmt.Errorf("parse disabled.encode: %w", err)
	}

	decode, err := parseOpcodes(raw.Disabled.Decode)
	if err != nil {
		return nil, fmt.Errorf("parse disabled.decode: %w", err)
	}

	return []Option{
		WithDisabled(Encode, encode...),
		WithDisabled(Decode, decode...),
	}, nil
}

func parseOpcodes(names []string) ([]opcodes.Opcode, error) {
	ops := make([]opcodes.Opcode, 0, len(names))
	for _, name := range names {
		op, ok := opcodes.Parse(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown opcode %q", name)
		}
		ops = append(ops, op)
	}

	return ops, nil
}
