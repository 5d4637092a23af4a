package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GoFFXI/webcodec/internal/web/saylink"
)

func SaylinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "saylink <narrow|widen> <hex-or-text>",
		Short: "Re-encode the item links embedded in a chat message",
		Long: `Re-encode the item links embedded in a chat message.

narrow converts server links to the web client's shorter form, widen goes the other way.
The message is read as hex when it decodes cleanly, otherwise as text in which \x12
stands for the link delimiter.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := parseMessage(args[1])

			var out string
			switch strings.ToLower(args[0]) {
			case "narrow":
				out = saylink.ServerToWeb(msg)
			case "widen":
				out = saylink.WebToServer(msg)
			default:
				return fmt.Errorf("mode must be narrow or widen, got %q", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%q\n", out)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString([]byte(out)))
			return nil
		},
	}
}

func parseMessage(arg string) string {
	if decoded, err := hex.DecodeString(arg); err == nil && len(decoded) > 0 {
		return string(decoded)
	}

	return strings.ReplaceAll(arg, `\x12`, string(rune(saylink.Delimiter)))
}
