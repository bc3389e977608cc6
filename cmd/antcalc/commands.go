package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"antennacalc/internal/calc"
	"antennacalc/internal/client"
	"antennacalc/internal/coax"
	"antennacalc/internal/models"
)

func (a *app) flowerPotCmd() *cobra.Command {
	in := models.DefaultFlowerPotInput()
	cmd := &cobra.Command{
		Use:   "flowerpot",
		Short: "Flower-pot (coaxial sleeve) dipole",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, newJob(models.KindFlowerPot, in, calc.FlowerPot, (*client.Client).FlowerPot))
		},
	}
	cmd.Flags().Float64Var(&in.FrequencyMHz, "freq", in.FrequencyMHz, "frequency, MHz")
	cmd.Flags().Float64Var(&in.ResonanceShiftPercent, "shift", in.ResonanceShiftPercent, "resonance shift, %")
	cmd.Flags().Float64Var(&in.VelocityFactor, "vf", in.VelocityFactor, "cable velocity factor")
	return cmd
}

func (a *app) groundPlaneCmd() *cobra.Command {
	in := models.DefaultGroundPlaneInput()
	cmd := &cobra.Command{
		Use:   "groundplane",
		Short: "Quarter-wave ground-plane",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, newJob(models.KindGroundPlane, in, calc.GroundPlane, (*client.Client).GroundPlane))
		},
	}
	cmd.Flags().Float64Var(&in.FrequencyMHz, "freq", in.FrequencyMHz, "frequency, MHz")
	return cmd
}

func (a *app) jPoleCmd() *cobra.Command {
	in := models.DefaultJPoleInput()
	cmd := &cobra.Command{
		Use:   "jpole",
		Short: "J-pole",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, newJob(models.KindJPole, in, calc.JPole, (*client.Client).JPole))
		},
	}
	cmd.Flags().Float64Var(&in.FrequencyMHz, "freq", in.FrequencyMHz, "frequency, MHz")
	cmd.Flags().Float64Var(&in.WireDiameterMM, "wire", in.WireDiameterMM, "wire or tube diameter, mm")
	return cmd
}

func (a *app) yagiCmd() *cobra.Command {
	in := models.DefaultYagiInput()
	var mounting int
	var dipole, boomShape, elementShape string

	cmd := &cobra.Command{
		Use:   "yagi",
		Short: "DL6WU long Yagi",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Mounting = models.MountingType(mounting)
			in.DipoleForm = models.DipoleForm(dipole)
			in.BoomShape = models.BoomShape(boomShape)
			in.ElementShape = models.ElementShape(elementShape)
			return a.run(cmd, newJob(models.KindYagi, in, calc.Yagi, (*client.Client).Yagi))
		},
	}
	f := cmd.Flags()
	f.Float64Var(&in.FrequencyMHz, "freq", in.FrequencyMHz, "frequency, MHz")
	f.IntVar(&in.Elements, "elements", in.Elements, "number of elements, 3 to 100")
	f.Float64Var(&in.BoomDiameterMM, "boom", in.BoomDiameterMM, "boom diameter, mm")
	f.Float64Var(&in.ElementDiameterMM, "element-diameter", in.ElementDiameterMM, "element diameter or flat width, mm")
	f.Float64Var(&in.ElementThicknessMM, "element-thickness", in.ElementThicknessMM, "flat element thickness, mm")
	f.IntVar(&mounting, "mounting", int(in.Mounting), "0 bonded through a metal boom, 1 insulated, 2 dielectric boom")
	f.StringVar(&dipole, "dipole", string(in.DipoleForm), "driven element: folded or split")
	f.StringVar(&boomShape, "boom-shape", string(in.BoomShape), "boom cross-section: square or round")
	f.StringVar(&elementShape, "element-shape", string(in.ElementShape), "element shape: round or flat")
	return cmd
}

func (a *app) kharchenkoCmd() *cobra.Command {
	in := models.DefaultKharchenkoInput()
	cmd := &cobra.Command{
		Use:   "kharchenko",
		Short: "Kharchenko (BiQuad) antenna",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, newJob(models.KindKharchenko, in, calc.Kharchenko, (*client.Client).Kharchenko))
		},
	}
	cmd.Flags().Float64Var(&in.FrequencyMHz, "freq", in.FrequencyMHz, "centre frequency, MHz")
	cmd.Flags().IntVar(&in.ImpedanceOhm, "impedance", in.ImpedanceOhm, "input impedance, 50 or 75 Ω")
	return cmd
}

func (a *app) coaxCmd() *cobra.Command {
	var nodes []string
	in := models.CoaxInput{PowerW: 50}

	cmd := &cobra.Command{
		Use:   "coax",
		Short: "Feed-line loss over the amateur bands",
		Long: "Feed-line loss over the amateur bands.\n\n" +
			"Each --node is component=quantity, where component is a catalog ID, a title or manufacturer/title\n" +
			"and quantity is metres for cables or a count for connectors and attenuators.",
		Example: "  antcalc coax --power 100 --node Generic/RG-58=15 --node BNC=2",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := coax.Default()
			parsed, err := parseNodes(catalog, nodes)
			if err != nil {
				return err
			}
			in.Nodes = parsed
			local := func(in models.CoaxInput) (models.CoaxResult, error) {
				r, err := coax.Calculate(catalog, in)
				if err != nil && coax.IsUserError(err) {
					return r, &calc.ValidationError{Messages: []string{err.Error()}, Err: err}
				}
				return r, err
			}
			return a.run(cmd, newJob(models.KindCoax, in, local, (*client.Client).Coax))
		},
	}
	cmd.Flags().StringArrayVar(&nodes, "node", nil, "feed-line component as component=quantity, repeatable")
	cmd.Flags().Float64Var(&in.PowerW, "power", in.PowerW, "transmitter power, W")
	return cmd
}

// parseNodes resolves component=quantity arguments against catalog
func parseNodes(catalog *coax.Catalog, args []string) ([]models.CoaxNodeInput, error) {
	out := make([]models.CoaxNodeInput, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid node %q, expected component=quantity", arg)
		}
		comp, err := catalog.Find(arg[:i])
		if err != nil {
			return nil, err
		}
		out = append(out, models.CoaxNodeInput{
			ComponentID: comp.ID,
			Quantity:    coax.ParseQuantity(arg[i+1:]),
		})
	}
	return out, nil
}

func awgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "awg <diameter-mm>",
		Short: "American Wire Gauge of a wire diameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := strconv.ParseFloat(strings.ReplaceAll(args[0], ",", "."), 64)
			if err != nil || d <= 0 {
				return fmt.Errorf("invalid diameter %q", args[0])
			}
			gauge := calc.AWG(d)
			if gauge == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%g mm is outside the AWG range\n", d)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g mm: AWG %s\n", d, gauge)
			return nil
		},
	}
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the cables, connectors and attenuators of the loss calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, g := range coax.Default().Groups() {
				fmt.Fprintln(w, headingStyle.Render(g.Key))
				for _, c := range g.Components {
					fmt.Fprintf(w, "  %s  %s (%s)\n", c.ID, c.Label(), c.Type.QuantityUnit())
				}
			}
			return nil
		},
	}
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "presets <calculator>",
		Short:     "List the preset frequencies of a calculator",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := models.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown calculator %q, use one of: %s", args[0], strings.Join(kindNames(), ", "))
			}
			presets := models.PresetsFor(kind)
			if len(presets) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no presets\n", kind.Title())
				return nil
			}
			for _, p := range presets {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10g %s\n", p.FrequencyMHz, p.Label)
			}
			return nil
		},
	}
}

func kindNames() []string {
	names := make([]string, len(models.Kinds))
	for i, k := range models.Kinds {
		names[i] = string(k)
	}
	return names
}
