package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/GoFFXI/webcodec/internal/web/slots"
)

func SlotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Inventory and corpse slot translation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(slotsTableCommand())
	cmd.AddCommand(slotsConvertCommand())

	return cmd
}

func mappingFor(corpse bool) *slots.Mapping {
	if corpse {
		return slots.Corpse
	}

	return slots.Inventory
}

func slotsTableCommand() *cobra.Command {
	var corpse, web bool

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the slot ranges of one translation direction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mapping := mappingFor(corpse)

			header := []string{"Server First", "Server Last", "Web First", "Web Last", "Offset"}
			ranges := mapping.ServerRanges()
			if web {
				header = []string{"Web First", "Web Last", "Server First", "Server Last", "Offset"}
				ranges = mapping.WebRanges()
			}

			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetHeader(header)
			tw.SetBorder(true)
			tw.SetAutoWrapText(false)

			for _, r := range ranges {
				tw.Append([]string{
					strconv.Itoa(int(r.Begin)),
					strconv.Itoa(int(r.End - 1)),
					strconv.Itoa(int(r.Begin + r.Offset)),
					strconv.Itoa(int(r.End - 1 + r.Offset)),
					fmt.Sprintf("%+d", r.Offset),
				})
			}

			tw.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&corpse, "corpse", false, "show the corpse loot mapping instead of inventory")
	cmd.Flags().BoolVar(&web, "web", false, "show the web to server direction")

	return cmd
}

func slotsConvertCommand() *cobra.Command {
	var corpse bool

	cmd := &cobra.Command{
		Use:   "convert <to-web|to-server> <slot>",
		Short: "Translate one slot number",
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

			mapping := mappingFor(corpse)

			var out int32
			var ok bool
			if direction == toWeb {
				out, ok = mapping.LookupServerToWeb(int32(n))
			} else {
				out, ok = mapping.LookupWebToServer(int32(n))
			}

			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%d -> invalid (%d)\n", n, slots.Invalid)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d -> %d\n", n, out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&corpse, "corpse", false, "use the corpse loot mapping")

	return cmd
}
