package main

import (
	"fmt"
	"log"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vector/internal/cpu"
	"github.com/cwbudde/algo-vector/internal/kernel"
	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/vector"
)

func newRootCmd() *cobra.Command {
	var (
		format  string
		verbose bool
	)

	root := &cobra.Command{
		Use:           "veccalc",
		Short:         "Evaluate fixed-size vector operations",
		Long:          "veccalc evaluates operations of the algo-vector family on 2 to 4 component vectors\ngiven as comma-separated values.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&format, "output", "o", getEnvStr("VECCALC_OUTPUT", formatText), "output format: text or yaml")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", getEnvBool("VECCALC_VERBOSE", false), "log operations and kernel selection to stderr")

	out := func(cmd *cobra.Command) (*printer, error) {
		var logger *log.Logger
		if verbose {
			logger = log.New(cmd.ErrOrStderr(), "veccalc: ", 0)
		}
		return newPrinter(cmd.OutOrStdout(), withFormat(format), withLogger(logger))
	}

	root.AddCommand(
		newTypesCmd(out),
		newLengthCmd(out),
		newNormalizeCmd(out),
		newDotCmd(out),
		newCrossCmd(out),
		newLerpCmd(out),
		newConvertCmd(out),
		newLengthsCmd(out),
		newCentroidCmd(out),
		newKernelsCmd(out),
	)
	return root
}

type printerFunc func(cmd *cobra.Command) (*printer, error)

func newTypesCmd(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the vector family",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			kinds := vector.Kinds()
			if p.cfg.format == formatYAML {
				type row struct {
					Name   string `yaml:"name"`
					Scalar string `yaml:"scalar"`
					Arity  int    `yaml:"arity"`
					Bytes  int    `yaml:"bytes"`
				}
				rows := make([]row, 0, len(kinds))
				for _, k := range kinds {
					rows = append(rows, row{Name: k.Name, Scalar: k.Scalar.String(), Arity: k.Arity, Bytes: k.ByteSize()})
				}
				return p.yaml(rows)
			}

			tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSCALAR\tARITY\tBYTES")
			for _, k := range kinds {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", k.Name, k.Scalar, k.Arity, k.ByteSize())
			}
			return tw.Flush()
		},
	}
}

func newLengthCmd(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "length <v>",
		Example: "  veccalc length 3,4\n  veccalc length [-3,4]\n  veccalc length -- -3,4",
		Short:   "Print the Euclidean length of a vector",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			v, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			return p.result(result{Op: "length", Inputs: []string{v.String()}, Value: scalar.FormatComponent(v.length())})
		},
	}
}

func newNormalizeCmd(out printerFunc) *cobra.Command {
	var allowZero bool
	cmd := &cobra.Command{
		Use:     "normalize <v>",
		Example: "  veccalc normalize 0,5\n  veccalc normalize [-2,0,0]",
		Short:   "Print a vector scaled to unit length",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			v, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			return p.result(result{Op: "normalize", Inputs: []string{v.String()}, Value: v.normalize(allowZero)})
		},
	}
	cmd.Flags().BoolVar(&allowZero, "allow-zero", true, "return the zero vector for zero input instead of the last unit axis")
	return cmd
}

func newDotCmd(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "dot <a> <b>",
		Example: "  veccalc dot 1,2,3 4,5,6\n  veccalc dot [-1,2] [3,4]\n  veccalc dot -- -1,2 3,4",
		Short:   "Print the dot product of two vectors",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			a, b, err := parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			return p.result(result{Op: "dot", Inputs: []string{a.String(), b.String()}, Value: scalar.FormatComponent(a.dot(b))})
		},
	}
}

func newCrossCmd(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "cross <a> <b>",
		Example: "  veccalc cross 1,0,0 0,1,0\n  veccalc cross [-1,0] [0,1]",
		Short:   "Print the cross product (scalar for 2D, vector for 3D)",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			a, b, err := parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			value, err := a.cross(b)
			if err != nil {
				return err
			}
			return p.result(result{Op: "cross", Inputs: []string{a.String(), b.String()}, Value: value})
		},
	}
}

func newLerpCmd(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "lerp <a> <b> <t>",
		Example: "  veccalc lerp 0,0 10,20 0.25\n  veccalc lerp 0,0 10,10 [-0.5]\n  veccalc lerp -- 0,0 10,10 -0.5",
		Short:   "Print the linear interpolation between two vectors",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			a, b, err := parsePair(args[0], args[1])
			if err != nil {
				return err
			}
			t, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			return p.result(result{Op: "lerp", Inputs: []string{a.String(), b.String(), args[2]}, Value: a.lerp(b, t)})
		},
	}
}

func newConvertCmd(out printerFunc) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:     "convert --to <kind> <v>",
		Example: "  veccalc convert --to i32 3.7,-1.9\n  veccalc convert --to i8 [-1.5,100]\n  veccalc convert --to i8 -- -1.5,100",
		Short:   "Convert a vector to another scalar kind",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			kind, err := vector.ParseScalarKind(to)
			if err != nil {
				return err
			}
			v, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			value, err := v.convert(kind)
			if err != nil {
				return err
			}
			return p.result(result{Op: "convert:" + kind.String(), Inputs: []string{v.String()}, Value: value})
		},
	}
	cmd.Flags().StringVar(&to, "to", "f32", "target scalar kind (u8, i8, u16, i16, u32, i32, u64, i64, f32, f64)")
	return cmd
}

func newKernelsCmd(out printerFunc) *cobra.Command {
	var generic bool
	cmd := &cobra.Command{
		Use:   "kernels",
		Short: "Show which batch kernels are selected on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			features := cpu.DetectFeatures()
			features.ForceGeneric = generic
			table := kernel.Global.Resolve(features)
			backend := kernel.BackendInfo()

			type report struct {
				Architecture string            `yaml:"architecture"`
				Selected     string            `yaml:"selected"`
				Operations   map[string]string `yaml:"operations"`
				Backend      []string          `yaml:"backend_features"`
				Accelerated  bool              `yaml:"accelerated"`
			}
			r := report{
				Architecture: features.Architecture,
				Selected:     table.Name,
				Operations:   table.Sources,
				Backend:      backend.Features,
				Accelerated:  backend.Accelerated && !generic,
			}
			if p.cfg.format == formatYAML {
				return p.yaml(r)
			}

			tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "architecture\t%s\n", r.Architecture)
			fmt.Fprintf(tw, "selected\t%s\n", r.Selected)
			for _, op := range []string{"Hypot", "SumSquares", "Mul", "Dot32", "Sum32", "Distance32"} {
				fmt.Fprintf(tw, "  %s\t%s\n", op, r.Operations[op])
			}
			fmt.Fprintf(tw, "accelerated\t%t\n", r.Accelerated)
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&generic, "generic", false, "show the selection with SIMD kernels disabled")
	return cmd
}
