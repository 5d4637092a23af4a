package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoFFXI/webcodec/internal/web/slots"
)

func CastingCommand() *cobra.Command {
	var inventorySlot int64

	cmd := &cobra.Command{
		Use:   "casting <to-web|to-server> <slot>",
		Short: "Translate a spell casting slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := parseDirection(args[0])
			if err != nil {
				return err
			}

			n, err := parseNumber(args[1], 64)
			if err != nil {
				return err
			}

			slot := uint32(n)
			if direction == toWeb {
				fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d\n", slot, slots.CastingServerToWeb(slot))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d\n", slot, slots.CastingWebToServer(slot, uint32(inventorySlot)))
			return nil
		},
	}

	cmd.Flags().Int64Var(&inventorySlot, "inventory-slot", int64(slots.InvalidIndex),
		"inventory slot carried by the cast request, used to tell items from disciplines")

	return cmd
}

func BuffsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "buffs <to-web|to-server> <index>",
		Short: "Translate a buff slot index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			direction, err := parseDirection(args[0])
			if err != nil {
				return err
			}

			n, err := parseNumber(args[1], 32)
			if err != nil {
				return err
			}

			index := int(n)
			src, dst, translate := slots.ServerBuffs, slots.WebBuffs, slots.BuffServerToWeb
			if direction == toServer {
				src, dst, translate = slots.WebBuffs, slots.ServerBuffs, slots.BuffWebToServer
			}

			if !src.Contains(index) {
				return fmt.Errorf("buff index %d is outside the %d source slots", index, src.Total())
			}

			out := translate(index)
			if !dst.Contains(out) {
				fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d (not shown by the target)\n", index, out)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d\n", index, out)
			return nil
		},
	}
}
