package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deepnoodle-ai/risor-rand/docs"
	"github.com/deepnoodle-ai/risor-rand/modules/rand"
	"github.com/deepnoodle-ai/risor-rand/object"
	"github.com/spf13/cobra"
)

// noneOrTwoArgs accepts either no bounds or a start and end pair.
func noneOrTwoArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
	}
	return nil
}

func parseInt(name, value string) (*object.Int, error) {
	i, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: expected an integer", name, value)
	}
	return object.NewInt(i), nil
}

func parseFloat(name, value string) (*object.Float, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: expected a number", name, value)
	}
	return object.NewFloat(f), nil
}

func (a *app) boolCmd() *cobra.Command {
	var p float64
	cmd := &cobra.Command{
		Use:   "bool",
		Short: "Print a random bool",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("p") {
				return a.call(cmd, "bool", object.NewFloat(p))
			}
			return a.call(cmd, "bool")
		},
	}
	cmd.Flags().Float64Var(&p, "p", 0.5, "Probability of true, in [0, 1]")
	return cmd
}

func (a *app) intCmd() *cobra.Command {
	var inclusive bool
	cmd := &cobra.Command{
		Use:   "int [start end]",
		Short: "Print a random integer, optionally within [start, end)",
		Args:  noneOrTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if inclusive {
					return fmt.Errorf("--inclusive requires start and end")
				}
				return a.call(cmd, "int")
			}
			start, err := parseInt("start", args[0])
			if err != nil {
				return err
			}
			end, err := parseInt("end", args[1])
			if err != nil {
				return err
			}
			return a.call(cmd, "int", start, end, object.NewBool(inclusive))
		},
	}
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "Include end in the range")
	return cmd
}

func (a *app) floatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "float [start end]",
		Short: "Print a random float in [0, 1) or [start, end)",
		Args:  noneOrTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.call(cmd, "float")
			}
			start, err := parseFloat("start", args[0])
			if err != nil {
				return err
			}
			end, err := parseFloat("end", args[1])
			if err != nil {
				return err
			}
			return a.call(cmd, "float", start, end)
		},
	}
}

func (a *app) uniformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uniform a b",
		Short: "Print a random float between a and b inclusive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lo, err := parseFloat("a", args[0])
			if err != nil {
				return err
			}
			hi, err := parseFloat("b", args[1])
			if err != nil {
				return err
			}
			return a.call(cmd, "uniform", lo, hi)
		},
	}
}

func (a *app) normalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normal [mean stddev]",
		Short: "Print a normally distributed float, standard normal by default",
		Args:  noneOrTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.call(cmd, "normal")
			}
			mean, err := parseFloat("mean", args[0])
			if err != nil {
				return err
			}
			stddev, err := parseFloat("stddev", args[1])
			if err != nil {
				return err
			}
			return a.call(cmd, "normal", mean, stddev)
		},
	}
}

func (a *app) exponentialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exponential [rate]",
		Short: "Print an exponentially distributed float with the given rate (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.call(cmd, "exponential")
			}
			rate, err := parseFloat("rate", args[0])
			if err != nil {
				return err
			}
			return a.call(cmd, "exponential", rate)
		},
	}
}

func (a *app) decimalCmd() *cobra.Command {
	var places int64
	cmd := &cobra.Command{
		Use:   "decimal [start end]",
		Short: "Print a random decimal in [0, 1) or [start, end)",
		Args:  noneOrTwoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if cmd.Flags().Changed("places") {
					return fmt.Errorf("--places requires start and end")
				}
				return a.call(cmd, "decimal")
			}
			// Bounds are passed as strings so no precision is lost.
			callArgs := []object.Object{object.NewString(args[0]), object.NewString(args[1])}
			if cmd.Flags().Changed("places") {
				callArgs = append(callArgs, object.NewInt(places))
			}
			return a.call(cmd, "decimal", callArgs...)
		},
	}
	cmd.Flags().Int64Var(&places, "places", 0, "Number of digits after the decimal point, 0 to 28")
	return cmd
}

func (a *app) sampleCmd() *cobra.Command {
	var k int64
	cmd := &cobra.Command{
		Use:   "sample [-k K] items...",
		Short: "Pick one item, or K distinct items, at random",
		Long: `Pick one item, or K distinct items, at random.

Items that parse as JSON (numbers, bools, null, arrays) are sampled as
those values. Everything else is treated as a string. Without -k a
single item is printed, and nothing is printed when no items are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := parseItems(args)
			if cmd.Flags().Changed("k") {
				return a.call(cmd, "sample", items, object.NewInt(k))
			}
			return a.call(cmd, "sample", items)
		},
	}
	cmd.Flags().Int64VarP(&k, "k", "k", 1, "Number of items to pick")
	return cmd
}

func (a *app) shuffleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle items...",
		Short: "Print the items in a random order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, "shuffle", parseItems(args))
		},
	}
}

func (a *app) bytesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bytes n",
		Short: "Print n random bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt("n", args[0])
			if err != nil {
				return err
			}
			return a.call(cmd, "bytes", n)
		},
	}
}

func (a *app) uuidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print a random version 4 UUID",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, "uuid")
		},
	}
}

func (a *app) docsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Print documentation for the rand module",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module := docs.Module{
				Name:      "rand",
				Doc:       rand.ModuleDoc(),
				Functions: rand.Docs(),
			}
			switch strings.ToLower(format) {
			case "markdown", "md":
				return module.WriteMarkdown(cmd.OutOrStdout())
			case "json":
				data, err := module.JSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			default:
				return fmt.Errorf("unknown docs format: %s", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "markdown", "Output format: markdown or json")
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"markdown", "json"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
