package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const (
	toWeb    = "to-web"
	toServer = "to-server"
)

// NewRootCommand builds the inspection CLI for the web client translation tables.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "webcodec",
		Short:         "Inspect web client slot tables, links and item serialization",
		Version:       fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(SlotsCommand())
	cmd.AddCommand(CastingCommand())
	cmd.AddCommand(BuffsCommand())
	cmd.AddCommand(SaylinkCommand())
	cmd.AddCommand(ItemCommand())
	cmd.AddCommand(OpcodesCommand())

	return cmd
}

func parseDirection(arg string) (string, error) {
	switch strings.ToLower(arg) {
	case toWeb, toServer:
		return strings.ToLower(arg), nil
	default:
		return "", fmt.Errorf("direction must be %s or %s, got %q", toWeb, toServer, arg)
	}
}

// parseNumber accepts decimal or 0x-prefixed hex.
func parseNumber(arg string, bits int) (int64, error) {
	n, err := strconv.ParseInt(arg, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", arg, err)
	}

	return n, nil
}
