package main

import (
	"fmt"
	"slices"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/GoFFXI/webcodec/internal/opcodes"
	"github.com/GoFFXI/webcodec/internal/web/codec"
)

func OpcodesCommand() *cobra.Command {
	var overridesFile string
	var all bool

	cmd := &cobra.Command{
		Use:   "opcodes",
		Short: "List the opcodes the web codec translates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := codec.LoadOverridesFile(overridesFile)
			if err != nil {
				return err
			}

			c, err := codec.New(opts...)
			if err != nil {
				return err
			}

			encoders := c.Registered(codec.Encode)
			decoders := c.Registered(codec.Decode)

			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetHeader([]string{"Opcode", "Name", "Encode", "Decode"})
			tw.SetBorder(true)
			tw.SetAutoWrapText(false)

			for _, op := range opcodes.All() {
				encode := slices.Contains(encoders, op)
				decode := slices.Contains(decoders, op)
				if !all && !encode && !decode {
					continue
				}

				tw.Append([]string{fmt.Sprintf("0x%04X", uint16(op)), op.String(), yesNo(encode), yesNo(decode)})
			}

			tw.Render()
			fmt.Fprintf(cmd.OutOrStdout(), "%d encoders, %d decoders\n", len(encoders), len(decoders))
			return nil
		},
	}

	cmd.Flags().StringVar(&overridesFile, "overrides", "", "codec overrides file whose disabled opcodes are removed")
	cmd.Flags().BoolVar(&all, "all", false, "include opcodes that pass through unchanged")

	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}

	return "-"
}
