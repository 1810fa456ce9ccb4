package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/jwirth/biokin/internal/config"
	"github.com/jwirth/biokin/internal/kinetic"
	"github.com/jwirth/biokin/internal/reaction"
	"github.com/jwirth/biokin/internal/store"
	"github.com/jwirth/biokin/internal/tui"
)

var (
	dataDir string
	ks      float64
	ki      float64
	gain    float64
	hill    float64
	maxS    float64
	points  int
	plot    bool
	concs   []string
)

var kindInfo = map[string]string{
	"haldane":          "S/(Ks+S+S²/Ki), substrate self-inhibition",
	"monod":            "S/(Ks+S), saturation",
	"simpleinhibition": "Ki/(Ki+S), non-competitive inhibition",
	"hill":             "Sʰ/(Ksʰ+Sʰ), cooperative saturation",
	"linear":           "K·S",
	"firstorder":       "S, no parameters",
}

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		}),
	))

	rootCmd := &cobra.Command{
		Use:   "biokin",
		Short: "reaction kinetics toolbox",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".biokin", "data directory")

	evalCmd := &cobra.Command{
		Use:   "eval [kind]",
		Short: "evaluate a kinetic factor over a solute range",
		Args:  cobra.ExactArgs(1),
		RunE:  evalFactor,
	}
	addParamFlags(evalCmd)
	evalCmd.Flags().BoolVar(&plot, "plot", false, "render curves as terminal plots")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list kinetic factor kinds",
		Run: func(cmd *cobra.Command, args []string) {
			reg := reaction.NewRegistry()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, kind := range reg.Kinds() {
				params := strings.Join(reg.ParamNames(kind), ", ")
				if params == "" {
					params = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", kind, params, kindInfo[kind])
			}
			w.Flush()
		},
	}

	exportCmd := &cobra.Command{
		Use:   "export [kind]",
		Short: "evaluate a factor and save the curve",
		Args:  cobra.ExactArgs(1),
		RunE:  exportFactor,
	}
	addParamFlags(exportCmd)

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved curves",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved curve",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [kind]",
		Short: "interactively adjust parameters and watch the curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := paramsFor(args[0])
			if err != nil {
				return err
			}
			return tui.Run(args[0], params, maxS)
		},
	}
	addParamFlags(exploreCmd)

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write an example reaction definition file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "reactions.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.Default()); err != nil {
				return err
			}
			slog.Info("wrote reaction definitions", "path", path)
			return nil
		},
	}

	rateCmd := &cobra.Command{
		Use:   "rate [config]",
		Short: "evaluate all reactions in a definition file",
		Args:  cobra.ExactArgs(1),
		RunE:  rateReactions,
	}
	rateCmd.Flags().StringArrayVar(&concs, "conc", nil, "solute concentration as name=value (repeatable)")

	rootCmd.AddCommand(evalCmd, listCmd, exportCmd, runsCmd, plotCmd, exploreCmd, initCmd, rateCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&ks, "ks", 2.0, "half-saturation concentration Ks")
	cmd.Flags().Float64Var(&ki, "ki", 50.0, "inhibition concentration Ki")
	cmd.Flags().Float64Var(&gain, "k", 1.0, "gain K (linear)")
	cmd.Flags().Float64Var(&hill, "hill", 2.0, "Hill exponent h")
	cmd.Flags().Float64Var(&maxS, "max-s", 20.0, "upper end of the solute range")
	cmd.Flags().IntVar(&points, "points", 60, "number of samples")
}

// paramsFor maps the flag values onto the kind's named parameters.
func paramsFor(kind string) (map[string]float64, error) {
	reg := reaction.NewRegistry()
	if _, err := reg.New(kind); err != nil {
		return nil, err
	}
	byName := map[string]float64{"Ks": ks, "Ki": ki, "K": gain, "h": hill}
	params := make(map[string]float64)
	for _, name := range reg.ParamNames(kind) {
		params[name] = byName[name]
	}
	return params, nil
}

func buildFactor(kind string) (kinetic.Factor, map[string]float64, error) {
	params, err := paramsFor(kind)
	if err != nil {
		return nil, nil, err
	}
	factor, err := reaction.NewRegistry().New(kind)
	if err != nil {
		return nil, nil, err
	}
	src := make(map[string]any, len(params))
	for name, v := range params {
		src[name] = v
	}
	if err := factor.Init(config.NewSource(src)); err != nil {
		return nil, nil, err
	}
	return factor, params, nil
}

func sampleCurve(factor kinetic.Factor) []store.Sample {
	if points < 2 {
		points = 2
	}
	samples := make([]store.Sample, points)
	for i := range samples {
		s := maxS * float64(i) / float64(points-1)
		samples[i] = store.Sample{
			S:          s,
			Rate:       factor.Rate(s),
			Derivative: factor.Derivative(s),
		}
	}
	return samples
}

func evalFactor(cmd *cobra.Command, args []string) error {
	kind := args[0]
	factor, params, err := buildFactor(kind)
	if err != nil {
		return err
	}
	samples := sampleCurve(factor)

	if plot {
		rates := make([]float64, len(samples))
		derivs := make([]float64, len(samples))
		for i, p := range samples {
			rates[i] = p.Rate
			derivs[i] = p.Derivative
		}
		fmt.Println(asciigraph.Plot(rates, asciigraph.Height(12), asciigraph.Width(64),
			asciigraph.Caption(fmt.Sprintf("%s rate(S), S ∈ [0, %g]", kind, maxS))))
		fmt.Println()
		fmt.Println(asciigraph.Plot(derivs, asciigraph.Height(12), asciigraph.Width(64),
			asciigraph.Caption("d rate/dS")))
		return nil
	}

	fmt.Printf("%s  %s\n", kind, formatParams(params))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "S\trate\tderivative\t")
	for _, p := range samples {
		fmt.Fprintf(w, "%.4f\t%.6f\t%.6f\t\n", p.S, p.Rate, p.Derivative)
	}
	return w.Flush()
}

func exportFactor(cmd *cobra.Command, args []string) error {
	kind := args[0]
	factor, params, err := buildFactor(kind)
	if err != nil {
		return err
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(kind, params, maxS, sampleCurve(factor))
	if err != nil {
		return err
	}
	slog.Info("saved curve", "run", id, "points", points)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(dataDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved curves")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tPOINTS\tPARAMS\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.Kind, r.Points, formatParams(r.Params), r.Timestamp.Format(time.DateTime))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	samples, err := st.LoadCurve(args[0])
	if err != nil {
		return err
	}

	rates := make([]float64, len(samples))
	for i, p := range samples {
		rates[i] = p.Rate
	}
	fmt.Println(asciigraph.Plot(rates, asciigraph.Height(12), asciigraph.Width(64),
		asciigraph.Caption(fmt.Sprintf("%s %s, S ∈ [0, %g]", meta.Kind, formatParams(meta.Params), meta.MaxS))))
	return nil
}

func rateReactions(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	network, err := reaction.Build(cfg, reaction.NewRegistry())
	if err != nil {
		return err
	}

	conc := make([]float64, len(network.Solutes))
	for _, spec := range concs {
		name, raw, ok := strings.Cut(spec, "=")
		if !ok {
			return fmt.Errorf("malformed --conc %q, expected name=value", spec)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("malformed --conc %q: %w", spec, err)
		}
		i := network.SoluteIndex(name)
		if i < 0 {
			return fmt.Errorf("solute %q not used by any reaction (known: %s)",
				name, strings.Join(network.Solutes, ", "))
		}
		conc[i] = v
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprint(w, "REACTION\tRATE")
	for _, s := range network.Solutes {
		fmt.Fprintf(w, "\td/d[%s]", s)
	}
	fmt.Fprintln(w)
	for _, r := range network.Reactions {
		fmt.Fprintf(w, "%s\t%.6g", r.Name, r.Rate(conc))
		for i := range network.Solutes {
			fmt.Fprintf(w, "\t%.6g", r.Derivative(conc, i))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func formatParams(params map[string]float64) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%.4g", name, params[name])
	}
	return strings.Join(parts, " ")
}
