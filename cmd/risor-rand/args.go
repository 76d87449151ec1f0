package main

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// isNegativeNumber reports whether arg is a number with a leading minus sign,
// which pflag would otherwise read as a shorthand flag.
func isNegativeNumber(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	_, err := strconv.ParseFloat(arg, 64)
	return err == nil
}

// escapeNegativeNumbers reorders args so that negative numbers reach the
// resolved command as positional arguments. The command path comes first,
// then the flags with their values, then "--" and the positional arguments
// in their original order. Args without a bare negative number are returned
// unchanged.
func escapeNegativeNumbers(root *cobra.Command, args []string) []string {
	cmd, _, err := root.Find(args)
	if err != nil || cmd == root {
		return args
	}
	flags := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	flags.AddFlagSet(cmd.LocalFlags())
	flags.AddFlagSet(cmd.InheritedFlags())
	takesValue := func(f *pflag.Flag) bool {
		return f != nil && f.NoOptDefVal == ""
	}

	var flagArgs, positional []string
	escaped := false
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(arg):
			positional = append(positional, arg)
			escaped = true
		case strings.HasPrefix(arg, "--"):
			flagArgs = append(flagArgs, arg)
			if !strings.Contains(arg, "=") && takesValue(flags.Lookup(arg[2:])) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			flagArgs = append(flagArgs, arg)
			if len(arg) == 2 && takesValue(flags.ShorthandLookup(arg[1:])) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		default:
			positional = append(positional, arg)
		}
	}

	path := strings.Fields(cmd.CommandPath())[1:]
	if !escaped || len(positional) < len(path) {
		return args
	}
	result := make([]string, 0, len(args)+1)
	result = append(result, path...)
	result = append(result, flagArgs...)
	result = append(result, "--")
	return append(result, positional[len(path):]...)
}
