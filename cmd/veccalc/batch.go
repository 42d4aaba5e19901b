package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-vector/batch"
	"github.com/cwbudde/algo-vector/internal/kernel"
	"github.com/cwbudde/algo-vector/scalar"
	"github.com/cwbudde/algo-vector/vec2"
	"github.com/cwbudde/algo-vector/vec3"
	"github.com/cwbudde/algo-vector/vec4"
)

// parseOperands parses every argument and requires a common arity.
func parseOperands(args []string) ([]operand, error) {
	ops := make([]operand, 0, len(args))
	for _, a := range args {
		op, err := parseOperand(a)
		if err != nil {
			return nil, err
		}
		if len(ops) > 0 && op.n != ops[0].n {
			return nil, fmt.Errorf("%w: arity mismatch %d vs %d", scalar.ErrInvalidArgument, ops[0].n, op.n)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func operandStrings(ops []operand) []string {
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = op.String()
	}
	return out
}

func collect[V any](ops []operand, conv func(operand) V) []V {
	out := make([]V, len(ops))
	for i, op := range ops {
		out[i] = conv(op)
	}
	return out
}

func batchLengths(ops []operand) ([]string, error) {
	lengths := make([]float64, len(ops))
	var err error
	switch ops[0].n {
	case 2:
		err = batch.Lengths2(lengths, collect(ops, operand.v2))
	case 3:
		err = batch.Lengths3(lengths, collect(ops, operand.v3))
	default:
		err = batch.Lengths4(lengths, collect(ops, operand.v4))
	}
	if err != nil {
		return nil, err
	}
	out := make([]string, len(lengths))
	for i, l := range lengths {
		out[i] = scalar.FormatComponent(l)
	}
	return out, nil
}

func batchCentroid(ops []operand) (string, error) {
	switch ops[0].n {
	case 2:
		c, err := batch.Centroid2(collect(ops, func(o operand) vec2.Vec[float32] {
			return vec2.Convert[float32](o.v2())
		}))
		return c.String(), err
	case 3:
		c, err := batch.Centroid3(collect(ops, func(o operand) vec3.Vec[float32] {
			return vec3.Convert[float32](o.v3())
		}))
		return c.String(), err
	default:
		c, err := batch.Centroid4(collect(ops, func(o operand) vec4.Vec[float32] {
			return vec4.Convert[float32](o.v4())
		}))
		return c.String(), err
	}
}

func newLengthsCmd(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "lengths <v>...",
		Example: "  veccalc lengths 3,4 6,8\n  veccalc lengths [-3,4] [6,-8]",
		Short:   "Print the length of every vector using the batch kernels",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			p.logf("kernels %s", kernel.Active().Name)
			values, err := batchLengths(ops)
			if err != nil {
				return err
			}
			return p.result(result{Op: "lengths", Inputs: operandStrings(ops), Values: values})
		},
	}
}

func newCentroidCmd(out printerFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "centroid <v>...",
		Example: "  veccalc centroid 0,0,0 2,4,6\n  veccalc centroid -- -2,0 2,0",
		Short:   "Print the mean of the vectors in float32 using the batch kernels",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := out(cmd)
			if err != nil {
				return err
			}
			ops, err := parseOperands(args)
			if err != nil {
				return err
			}
			p.logf("kernels %s", kernel.Active().Name)
			value, err := batchCentroid(ops)
			if err != nil {
				return err
			}
			return p.result(result{Op: "centroid", Inputs: operandStrings(ops), Value: value})
		},
	}
}
