package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pfrsim/internal/automation"
	"github.com/san-kum/pfrsim/internal/config"
	"github.com/san-kum/pfrsim/internal/export"
	"github.com/san-kum/pfrsim/internal/integrators"
	"github.com/san-kum/pfrsim/internal/metrics"
	"github.com/san-kum/pfrsim/internal/reactor"
	"github.com/san-kum/pfrsim/internal/server"
	"github.com/san-kum/pfrsim/internal/sweep"
	"github.com/san-kum/pfrsim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	noPlot      bool
	jsonOut     bool
	addr        string
	sweepTIn    string
	sweepVel    string
	sweepTJ     string
	maxTemp     float64
	compareWith string
	outPath     string
	format      string
	svgProfile  string
	paramName   string
	paramMin    float64
	paramMax    float64
	paramSteps  int
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one operating point",
		RunE:  runSimulation,
	}
	addOperatingPointFlags(cmd)
	cmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip profile plots")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the API response JSON")
	return cmd
}

// simulate runs the configured operating point and warns when the profile
// leaves the finite range.
func simulate(s *settings) (*reactor.Result, error) {
	integ, err := integrators.New(s.cfg.Integrator)
	if err != nil {
		return nil, err
	}
	res, err := reactor.Simulate(s.cfg.OperatingPoint, s.cfg.Reactor, integ)
	if err != nil {
		return nil, err
	}
	if err := res.Profile.CheckFinite(); err != nil {
		s.log.WithError(err).Warn("profile left the finite range")
	}
	return res, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := simulate(s)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(server.NewResponse(res))
	}

	req := res.Request
	fmt.Printf("T_in=%.2f K  Flow_Velocity=%.3f m/s  T_jacket=%.2f K  (%s, %d points, %v)\n\n",
		req.TIn, req.Velocity, req.TJacket, res.Integrator, res.Profile.Len(), elapsed.Round(time.Microsecond))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "final_conversion\t%.4f %%\n", res.Summary.FinalConversion)
	fmt.Fprintf(w, "max_temperature\t%.4f K\n", res.Summary.MaxTemperature)
	writeMetrics(w, metrics.Evaluate(res.Profile, metrics.Defaults()...))
	w.Flush()

	if noPlot || res.Profile.CheckFinite() != nil {
		return nil
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(res.Profile.T,
		asciigraph.Height(10), asciigraph.Width(80),
		asciigraph.Caption("temperature [K] vs z")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(res.Profile.C,
		asciigraph.Height(10), asciigraph.Width(80),
		asciigraph.Caption("concentration C_A [-] vs z")))
	return nil
}

func writeMetrics(w io.Writer, values map[string]float64) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.4f\n", name, values[name])
	}
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the simulation API over HTTP and websocket",
		RunE:  serve,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+config.DefaultAddr+")")
	return cmd
}

func serve(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		s.cfg.Server.Addr = addr
	}

	srv, err := server.New(server.Options{
		Params:         s.cfg.Reactor,
		Integrator:     s.cfg.Integrator,
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		RateLimit:      s.cfg.Server.RateLimit,
		Burst:          s.cfg.Server.Burst,
		Logger:         s.log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.Run(ctx, s.cfg.Server.Addr)
}

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate a grid of operating points",
		RunE:  runSweep,
	}
	cmd.Flags().StringVar(&sweepTIn, "t-in", "300:340:10", "inlet temperatures, start:stop:step or comma list")
	cmd.Flags().StringVar(&sweepVel, "velocity", "1.0:3.0:0.5", "flow velocities, start:stop:step or comma list")
	cmd.Flags().StringVar(&sweepTJ, "t-jacket", "280", "jacket temperatures, start:stop:step or comma list")
	cmd.Flags().Float64Var(&maxTemp, "max-temp", 0, "peak temperature limit for the best point [K], 0 for none")
	return cmd
}

// parseAxis accepts "start:stop:step", "a,b,c" or a single value.
func parseAxis(axis string) ([]float64, error) {
	if parts := strings.Split(axis, ":"); len(parts) == 3 {
		var bounds [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid range %q: %w", axis, err)
			}
			bounds[i] = v
		}
		return sweep.Range(bounds[0], bounds[1], bounds[2])
	}

	var values []float64
	for _, p := range strings.Split(axis, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value list %q: %w", axis, err)
		}
		values = append(values, v)
	}
	return values, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	var grid sweep.Grid
	if grid.TIn, err = parseAxis(sweepTIn); err != nil {
		return err
	}
	if grid.Velocity, err = parseAxis(sweepVel); err != nil {
		return err
	}
	if grid.TJacket, err = parseAxis(sweepTJ); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	points, err := sweep.NewRunner(s.cfg.Reactor, s.cfg.Integrator).Run(ctx, grid)
	if err != nil {
		return err
	}
	s.log.WithField("points", len(points)).WithField("elapsed", time.Since(start).String()).Info("sweep finished")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T_IN\tVELOCITY\tT_JACKET\tCONVERSION %\tMAX T [K]")
	for _, p := range points {
		if p.Err != nil {
			fmt.Fprintf(w, "%.2f\t%.3f\t%.2f\terror: %v\t\n", p.Request.TIn, p.Request.Velocity, p.Request.TJacket, p.Err)
			continue
		}
		fmt.Fprintf(w, "%.2f\t%.3f\t%.2f\t%.2f\t%.2f\n",
			p.Request.TIn, p.Request.Velocity, p.Request.TJacket,
			p.Summary.FinalConversion, p.Summary.MaxTemperature)
	}
	w.Flush()

	best, ok := sweep.Best(points, maxTemp)
	if !ok {
		fmt.Println("\nno operating point satisfies the temperature limit")
		return nil
	}
	fmt.Printf("\nbest: T_in=%.2f K, Flow_Velocity=%.3f m/s, T_jacket=%.2f K -> %.2f %% conversion, peak %.2f K\n",
		best.Request.TIn, best.Request.Velocity, best.Request.TJacket,
		best.Summary.FinalConversion, best.Summary.MaxTemperature)
	return nil
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "run one operating point with several integrators",
		RunE:  compareIntegrators,
	}
	addOperatingPointFlags(cmd)
	cmd.Flags().StringVar(&compareWith, "integrators", strings.Join(integrators.Names(), ","), "comma separated integrators")
	return cmd
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "INTEGRATOR\tCONVERSION %\tMAX T [K]\tTIME")
	for _, name := range strings.Split(compareWith, ",") {
		integ, err := integrators.New(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		start := time.Now()
		res, err := reactor.Simulate(s.cfg.OperatingPoint, s.cfg.Reactor, integ)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.6f\t%.6f\t%v\n", res.Integrator,
			res.Summary.FinalConversion, res.Summary.MaxTemperature, time.Since(start).Round(time.Microsecond))
	}
	return w.Flush()
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "simulate and write the profile as csv, json, xlsx, pdf or svg",
		RunE:  exportProfile,
	}
	addOperatingPointFlags(cmd)
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&format, "format", "", "export format (default from output extension, else csv)")
	cmd.Flags().StringVar(&svgProfile, "profile", "temperature", "profile charted by svg export (temperature, concentration)")
	return cmd
}

func exportProfile(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	f := format
	if f == "" {
		f = export.FormatFromPath(outPath)
	}
	if f == "" {
		f = "csv"
	}

	res, err := simulate(s)
	if err != nil {
		return err
	}
	data := export.NewData(res, s.cfg.Reactor, metrics.Evaluate(res.Profile, metrics.Defaults()...))

	var w io.Writer = os.Stdout
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer file.Close()
		w = file
	}

	if f == "svg" {
		err = export.WriteSVG(w, data, svgProfile)
	} else {
		err = export.Write(w, f, data)
	}
	if err != nil {
		return err
	}
	if outPath != "" {
		s.log.WithField("path", outPath).WithField("format", f).Info("exported")
	}
	return nil
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "tune the operating point interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			m, err := viz.NewModel(s.cfg.OperatingPoint, s.cfg.Reactor, s.cfg.Integrator)
			if err != nil {
				return err
			}
			return viz.Run(m)
		},
	}
	addOperatingPointFlags(cmd)
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list operating point presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tT_IN\tVELOCITY\tT_JACKET\tDESCRIPTION")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%.2f\t%.3f\t%.2f\t%s\n",
					name, p.Request.TIn, p.Request.Velocity, p.Request.TJacket, p.Description)
			}
			w.Flush()
		},
	}
}

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "show resolved reactor parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			values := s.cfg.Reactor.GetParams()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			for _, name := range reactor.ParamNames() {
				fmt.Fprintf(w, "%s\t%g\n", name, values[name])
			}
			fmt.Fprintf(w, "exchange_area\t%g\n", s.cfg.Reactor.ExchangeArea())
			fmt.Fprintf(w, "grid_points\t%d\n", s.cfg.Reactor.GridSize())
			return w.Flush()
		},
	}
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], s.cfg); err != nil {
				return err
			}
			fmt.Println("wrote", args[0])
			return nil
		},
	}
}

func newScenarioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml scenario of operating points",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			sc, err := automation.LoadScenario(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			results, runErr := automation.RunScenario(ctx, sc, s.cfg.Reactor, s.log)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STEP\tINTEGRATOR\tT_IN\tVELOCITY\tT_JACKET\tCONVERSION %\tMAX T [K]")
			for _, r := range results {
				req := r.Result.Request
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%.3f\t%.2f\t%.2f\t%.2f\n",
					r.Step.Name, r.Result.Integrator, req.TIn, req.Velocity, req.TJacket,
					r.Result.Summary.FinalConversion, r.Result.Summary.MaxTemperature)
			}
			w.Flush()
			return runErr
		},
	}
}

func newParamSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "param-sweep",
		Short: "vary one reactor parameter at a fixed operating point",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			results, err := automation.RunSweep(cmd.Context(), &automation.ParameterSweep{
				Integrator: s.cfg.Integrator,
				ParamName:  paramName,
				ParamMin:   paramMin,
				ParamMax:   paramMax,
				NumSteps:   paramSteps,
				Request:    s.cfg.OperatingPoint,
			}, s.cfg.Reactor)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\tCONVERSION %%\tMAX T [K]\n", strings.ToUpper(paramName))
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(w, "%g\terror: %v\t\n", r.ParamValue, r.Err)
					continue
				}
				fmt.Fprintf(w, "%g\t%.2f\t%.2f\n", r.ParamValue, r.Summary.FinalConversion, r.Summary.MaxTemperature)
			}
			return w.Flush()
		},
	}
	addOperatingPointFlags(cmd)
	cmd.Flags().StringVar(&paramName, "param", "u", "reactor parameter to vary")
	cmd.Flags().Float64Var(&paramMin, "min", 250, "first value")
	cmd.Flags().Float64Var(&paramMax, "max", 1000, "last value")
	cmd.Flags().IntVar(&paramSteps, "steps", 4, "number of values")
	return cmd
}
