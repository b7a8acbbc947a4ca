package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wavefieldlabs/seisdb/parse"
)

func newStationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stations <file>",
		Short: "Parse a receiver file (STATIONS or StationXML) and print the receivers.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			receivers, err := parse.ParseReceivers(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range receivers {
				_, _ = fmt.Fprintln(out, r)
			}
			_, _ = fmt.Fprintf(out, "%d receivers\n", len(receivers))
			return nil
		},
	}
}
