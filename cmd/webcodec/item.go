package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GoFFXI/webcodec/internal/items"
	"github.com/GoFFXI/webcodec/internal/web/serializer"
	"github.com/GoFFXI/webcodec/internal/web/slots"
)

func ItemCommand() *cobra.Command {
	var slot int32
	var depth int

	cmd := &cobra.Command{
		Use:   "item <fixture> <instance-name|item-id>",
		Short: "Serialize an item from a TOML or YAML fixture",
		Long: `Serialize an item from a TOML or YAML fixture.

The second argument names an instance from the fixture. A bare item id serializes a
single fresh instance of that catalog entry.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fixture, err := items.LoadFixture(args[0])
			if err != nil {
				return err
			}

			inst, err := fixtureInstance(fixture, args[1])
			if err != nil {
				return err
			}

			webSlot, ok := slots.Inventory.LookupServerToWeb(slot)
			if !ok {
				webSlot = slots.Invalid
			}

			s := serializer.New(fixture.Catalog(), slog.New(slog.DiscardHandler), depth)
			record, err := s.Serialize(inst, webSlot)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", record)
			return nil
		},
	}

	cmd.Flags().Int32Var(&slot, "slot", 0, "server inventory slot the item sits in")
	cmd.Flags().IntVar(&depth, "max-depth", serializer.MaxDepth, "deepest container nesting to serialize")

	return cmd
}

func fixtureInstance(fixture *items.Fixture, ref string) (*items.Instance, error) {
	if inst, ok := fixture.Instances[ref]; ok {
		return &inst, nil
	}

	id, err := strconv.ParseUint(ref, 10, 32)
	if err != nil {
		return nil, fmt.Errorf("no instance named %q in fixture", ref)
	}

	return &items.Instance{ItemID: uint32(id), Charges: 1}, nil
}
