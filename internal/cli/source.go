package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wavefieldlabs/seisdb/model"
	"github.com/wavefieldlabs/seisdb/parse"
)

func newSourceCommand() *cobra.Command {
	var (
		latitude  float64
		longitude float64
		depthInM  float64
		strike    float64
		dip       float64
		rake      float64
		m0        float64
		voigt     bool
	)

	cmd := &cobra.Command{
		Use:   "source [file]",
		Short: "Parse a source file (QuakeML or CMTSOLUTION) or build one from strike/dip/rake, and print it.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src *model.Source
			switch {
			case len(args) == 1:
				parsed, err := parse.ParseSource(args[0])
				if err != nil {
					return err
				}
				src = parsed
			case cmd.Flags().Changed("m0"):
				var depth *float64
				if cmd.Flags().Changed("depth-in-m") {
					depth = model.Depth(depthInM)
				}
				src = model.NewSourceFromStrikeDipRake(latitude, longitude, depth, strike, dip, rake, m0)
			default:
				return fmt.Errorf("either a source file or --m0 with --strike/--dip/--rake is required")
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprint(out, src)
			if voigt {
				v := src.TensorVoigt()
				_, _ = fmt.Fprintf(out, "Voigt     : [%10.2e %10.2e %10.2e %10.2e %10.2e %10.2e] Nm\n",
					v[0], v[1], v[2], v[3], v[4], v[5])
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&latitude, "latitude", 0, "Source latitude in degrees.")
	cmd.Flags().Float64Var(&longitude, "longitude", 0, "Source longitude in degrees.")
	cmd.Flags().Float64Var(&depthInM, "depth-in-m", 0, "Source depth in metres.")
	cmd.Flags().Float64Var(&strike, "strike", 0, "Fault strike in degrees.")
	cmd.Flags().Float64Var(&dip, "dip", 0, "Fault dip in degrees.")
	cmd.Flags().Float64Var(&rake, "rake", 0, "Fault rake in degrees.")
	cmd.Flags().Float64Var(&m0, "m0", 0, "Scalar seismic moment in N·m.")
	cmd.Flags().BoolVar(&voigt, "voigt", false, "Also print the moment tensor in Voigt order.")

	return cmd
}
