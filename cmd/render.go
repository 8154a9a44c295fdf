package main

import (
	"context"
	"curvelab/internal/config"
	"curvelab/internal/plotter"
	"curvelab/pkg/curve"
	"curvelab/pkg/domain"
	"curvelab/pkg/logger"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// scenarioFile is the YAML layout accepted by the render command. Exactly one
// of frontier and market must be present.
type scenarioFile struct {
	Name     string               `yaml:"name"`
	Frontier *domain.FrontierSpec `yaml:"frontier"`
	Market   *domain.MarketSpec   `yaml:"market"`
}

func loadScenarioFile(r io.Reader) (domain.Scenario, error) {
	var f scenarioFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return domain.Scenario{}, fmt.Errorf("could not decode scenario file: %w", err)
	}

	s := domain.Scenario{Name: f.Name, Frontier: f.Frontier, Market: f.Market}
	switch {
	case f.Frontier != nil && f.Market == nil:
		s.Kind = domain.ScenarioKindFrontier
	case f.Market != nil && f.Frontier == nil:
		s.Kind = domain.ScenarioKindMarket
	default:
		return s, fmt.Errorf("scenario file needs exactly one of frontier and market")
	}

	return s, nil
}

// num formats v rounded half away from zero to precision decimals.
func num(v float64, precision int32) string {
	return decimal.NewFromFloat(v).StringFixed(precision)
}

func writeTable(w io.Writer, ds *domain.Dataset, precision int32, withPoints bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	f := func(v float64) string { return num(v, precision) }

	for _, s := range ds.Series {
		fmt.Fprintf(tw, "series\t%s\t%d points\n", s.Name, len(s.Points))
		if withPoints {
			for _, p := range s.Points {
				fmt.Fprintf(tw, "\t%s\t%s\n", f(p.X), f(p.Y))
			}
		}
	}
	if ds.Box != nil {
		fmt.Fprintf(tw, "box\t%s x %s\t\n", f(ds.Box.X), f(ds.Box.Y))
	}
	if p := ds.Probe; p != nil {
		fmt.Fprintf(tw, "probe\tx=%s y=%s\tslope=%s opportunity cost=%s\n",
			f(p.X), f(p.Y), f(p.Slope), f(p.OpportunityCost))
	}
	if len(ds.Classified) > 0 {
		counts := curve.Count(ds.Classified)
		fmt.Fprintf(tw, "classified\t%d points\t%s=%d %s=%d %s=%d\n", len(ds.Classified),
			curve.RegionFeasible, counts[curve.RegionFeasible],
			curve.RegionOnBoundary, counts[curve.RegionOnBoundary],
			curve.RegionInfeasible, counts[curve.RegionInfeasible])
		if withPoints {
			for _, c := range ds.Classified {
				fmt.Fprintf(tw, "\t%s\t%s\t%s\n", f(c.Point.X), f(c.Point.Y), c.Region)
			}
		}
	}
	if eq := ds.Equilibrium; eq != nil {
		fmt.Fprintf(tw, "equilibrium\tquantity=%s\tprice=%s\n", f(eq.Quantity), f(eq.Price))
	}
	if m := ds.Movement; m != nil {
		fmt.Fprintf(tw, "movement\t(%s, %s) -> (%s, %s)\tdQ=%s dP=%s\n",
			f(m.From.X), f(m.From.Y), f(m.To.X), f(m.To.Y), f(m.DeltaQuantity), f(m.DeltaPrice))
	}
	if r := ds.Related; r != nil {
		fmt.Fprintf(tw, "related\t%s shift=%s\tP = %sQ + %s\n",
			r.Relation, f(r.Shift), f(r.Demand.Slope), f(r.Demand.Intercept))
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("could not write table: %w", err)
	}

	return nil
}

// renderCommand constructs the 'render' subcommand that renders a scenario
// file offline, without storage or workers.
func renderCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Renders a scenario file and prints its dataset",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			path, _ := cmd.Flags().GetString("file")
			asJSON, _ := cmd.Flags().GetBool("json")
			withPoints, _ := cmd.Flags().GetBool("points")
			ctx = logger.WithFields(ctx, zap.String("file", path))

			file, err := os.Open(path)
			if err != nil {
				logger.Fatal(ctx, "could not open scenario file", zap.Error(err))
			}
			defer file.Close()

			scenario, err := loadScenarioFile(file)
			if err != nil {
				logger.Fatal(ctx, "invalid scenario file", zap.Error(err))
			}

			ds, err := plotter.Build(scenario, plotter.NewOptions(cfg), nil)
			if err != nil {
				logger.Fatal(ctx, "could not render scenario", zap.Error(err))
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				err = enc.Encode(ds)
			} else {
				err = writeTable(out, ds, cfg.Engine.Precision, withPoints)
			}
			if err != nil {
				logger.Fatal(ctx, "could not print dataset", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringP("file", "f", "", "Scenario YAML file")
	cmd.Flags().Bool("json", false, "Print the full dataset as JSON")
	cmd.Flags().Bool("points", false, "Include every sampled point in the table")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
