// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/modelinspector/aggregation"
	"github.com/katalvlaran/modelinspector/model"
	"github.com/katalvlaran/modelinspector/provider"
	"github.com/katalvlaran/modelinspector/view"
)

var (
	errNeedsPair       = errors.New("view needs --equation and --variable")
	errUnknownSymbol   = errors.New("unknown symbol")
	errAggregationView = errors.New("aggregation needs a symbols view")
)

// viewFile is the YAML form of the show flags. Flags given on the command
// line win over the file.
type viewFile struct {
	View      string `yaml:"view"`
	Equation  string `yaml:"equation"`
	Variable  string `yaml:"variable"`
	Absolute  *bool  `yaml:"absolute"`
	Aggregate string `yaml:"aggregate"`
	UniteRows []int  `yaml:"unite_rows"`
	UniteCols []int  `yaml:"unite_cols"`
	Filter    *struct {
		Min      float64 `yaml:"min"`
		Max      float64 `yaml:"max"`
		Exclude  bool    `yaml:"exclude"`
		Absolute bool    `yaml:"absolute"`
	} `yaml:"filter"`
	Labels      map[string]bool `yaml:"labels"`
	Identifiers map[string]bool `yaml:"identifiers"`
	AnyLabel    bool            `yaml:"any_label"`
}

type showOptions struct {
	configPath string
	file       viewFile

	view      string
	equation  string
	variable  string
	absolute  bool
	absSet    bool // absolute came from the command line or the view file
	aggregate string
	uniteRows []int
	uniteCols []int
	min, max  float64
	exclude   bool
	filtered  bool
}

func newShowCmd() *cobra.Command {
	o := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show <model.yaml>",
		Short: "Compute one view and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.load(cmd); err != nil {
				return err
			}
			m, h, err := openModel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cfg, err := o.config(m, view.NewSession())
			if err != nil {
				return err
			}
			if err := provider.NewLoader(h).Run(cmd.Context(), cfg); err != nil {
				return err
			}
			renderView(cmd.OutOrStdout(), h, cfg.ID)

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "YAML view file")
	f.StringVar(&o.view, "view", view.Overview.String(), "view type: scaling, overview, count, average, symbols or postopt")
	f.StringVarP(&o.equation, "equation", "e", "", "equation symbol for symbols and postopt views")
	f.StringVarP(&o.variable, "variable", "v", "", "variable symbol for symbols and postopt views")
	f.BoolVar(&o.absolute, "absolute", false, "use absolute coefficient values")
	f.StringVar(&o.aggregate, "aggregate", "", "aggregation type: sum, count, mean, median, max or min")
	f.IntSliceVar(&o.uniteRows, "unite-rows", nil, "equation dimensions (1-based) to unite")
	f.IntSliceVar(&o.uniteCols, "unite-cols", nil, "variable dimensions (1-based) to unite")
	f.Float64Var(&o.min, "min", math.Inf(-1), "hide values below min")
	f.Float64Var(&o.max, "max", math.Inf(1), "hide values above max")
	f.BoolVar(&o.exclude, "exclude", false, "hide values inside [min, max] instead")

	return cmd
}

// load reads the view file, if any, and fills every flag the command line
// did not set.
func (o *showOptions) load(cmd *cobra.Command) error {
	o.filtered = cmd.Flags().Changed("min") || cmd.Flags().Changed("max")
	o.absSet = cmd.Flags().Changed("absolute")
	if o.configPath == "" {
		return nil
	}
	data, err := os.ReadFile(o.configPath)
	if err != nil {
		return fmt.Errorf("read view file: %w", err)
	}
	if err := yaml.Unmarshal(data, &o.file); err != nil {
		return fmt.Errorf("parse view file %s: %w", o.configPath, err)
	}

	set := cmd.Flags().Changed
	vf := o.file
	if !set("view") && vf.View != "" {
		o.view = vf.View
	}
	if !set("equation") && vf.Equation != "" {
		o.equation = vf.Equation
	}
	if !set("variable") && vf.Variable != "" {
		o.variable = vf.Variable
	}
	if !set("absolute") && vf.Absolute != nil {
		o.absolute = *vf.Absolute
		o.absSet = true
	}
	if !set("aggregate") && vf.Aggregate != "" {
		o.aggregate = vf.Aggregate
	}
	if !set("unite-rows") && vf.UniteRows != nil {
		o.uniteRows = vf.UniteRows
	}
	if !set("unite-cols") && vf.UniteCols != nil {
		o.uniteCols = vf.UniteCols
	}
	if !set("min") && !set("max") && vf.Filter != nil {
		o.min, o.max, o.exclude = vf.Filter.Min, vf.Filter.Max, vf.Filter.Exclude
		o.filtered = true
	}

	return nil
}

// config turns the options into a view configuration issued by s.
func (o *showOptions) config(m model.Instance, s *view.Session) (*view.Config, error) {
	t, err := view.ParseType(o.view)
	if err != nil {
		return nil, err
	}
	cfg := s.NewConfig(t)
	if o.absSet {
		cfg.UseAbsoluteValues = o.absolute
	}

	eq, err := symbol(m, model.Equation, o.equation)
	if err != nil {
		return nil, err
	}
	vr, err := symbol(m, model.Variable, o.variable)
	if err != nil {
		return nil, err
	}
	if eq != nil {
		cfg.Equations = []int{eq.Offset}
	}
	if vr != nil {
		cfg.Variables = []int{vr.Offset}
	}
	if (t == view.Symbols || t == view.Postopt) && (eq == nil || vr == nil) {
		return nil, fmt.Errorf("%s: %w", t, errNeedsPair)
	}

	if o.aggregate != "" {
		at, err := aggregation.ParseType(o.aggregate)
		if err != nil {
			return nil, err
		}
		if at != aggregation.None {
			if t != view.Symbols {
				return nil, fmt.Errorf("%s: %w", t, errAggregationView)
			}
			cfg.Aggregation = aggregation.New(at)
			cfg.Aggregation.UseAbsoluteValues = o.absolute
			cfg.Aggregation.Rows[eq.Offset] = aggregation.NewItem(eq.Name, eq.Offset, o.uniteRows...)
			cfg.Aggregation.Columns[vr.Offset] = aggregation.NewItem(vr.Name, vr.Offset, o.uniteCols...)
		}
	}

	if o.filtered {
		cfg.Filter = view.NewValueFilter(o.min, o.max)
		cfg.Filter.Exclude = o.exclude
		if o.file.Filter != nil {
			cfg.Filter.Absolute = o.file.Filter.Absolute
		}
	}
	cfg.LabelFilter = aggregation.LabelFilter{
		Labels:      o.file.Labels,
		Identifiers: o.file.Identifiers,
		Any:         o.file.AnyLabel,
	}

	return cfg, nil
}

// symbol resolves an optional symbol name.
func symbol(m model.Instance, kind model.SymbolKind, name string) (*model.Symbol, error) {
	if name == "" {
		return nil, nil
	}
	s := model.SymbolByName(m, kind, name)
	if s == nil {
		return nil, fmt.Errorf("%s %q: %w", kind, name, errUnknownSymbol)
	}

	return s, nil
}
