package main

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/risor-rand/modules/rand"
	"github.com/deepnoodle-ai/risor-rand/object"
	"github.com/deepnoodle-ai/risor-rand/random"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type app struct {
	root   *cobra.Command
	config *viper.Viper
	logger zerolog.Logger
	module *object.Module
}

func newApp() *app {
	a := &app{
		config: viper.New(),
		logger: zerolog.Nop(),
	}
	root := &cobra.Command{
		Use:               "risor-rand",
		Short:             "Random numbers, sampling and shuffling",
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "Config file (json, toml or yaml)")
	flags.Uint64("seed", 0, "Seed the generator for a reproducible stream")
	flags.String("algorithm", "", "Generator: runtime, pcg, chacha8 or mt19937")
	flags.StringP("output", "o", "", "Output format: json or text")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	if err := a.config.BindPFlags(flags); err != nil {
		panic(err)
	}
	a.config.SetEnvPrefix("RISOR_RAND")
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	_ = root.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp
	})
	_ = root.RegisterFlagCompletionFunc("algorithm", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(random.Algorithms))
		for _, alg := range random.Algorithms {
			names = append(names, string(alg))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	root.AddCommand(
		a.boolCmd(),
		a.intCmd(),
		a.floatCmd(),
		a.uniformCmd(),
		a.normalCmd(),
		a.exponentialCmd(),
		a.decimalCmd(),
		a.sampleCmd(),
		a.shuffleCmd(),
		a.bytesCmd(),
		a.uuidCmd(),
		a.docsCmd(),
	)
	a.root = root
	return a
}

// setup reads the config file and global flags, then builds the rand module
// every subcommand calls into.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if path := a.config.GetString("config"); path != "" {
		a.config.SetConfigFile(path)
		if err := a.config.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}
	processGlobalFlags(a.config)
	a.logger = newLogger(cmd.ErrOrStderr(), a.config.GetBool("verbose"))
	if used := a.config.ConfigFileUsed(); used != "" {
		a.logger.Debug().Str("path", used).Msg("loaded config file")
	}
	r, err := a.newRand()
	if err != nil {
		return err
	}
	a.module = rand.NewModule(r)
	return nil
}

func (a *app) newRand() (*random.Rand, error) {
	var opts []random.Option
	algorithm := random.Runtime
	if name := a.config.GetString("algorithm"); name != "" {
		alg, err := random.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		algorithm = alg
		opts = append(opts, random.WithAlgorithm(alg))
	}
	event := a.logger.Debug()
	if a.config.IsSet("seed") {
		seed := a.config.GetUint64("seed")
		opts = append(opts, random.WithSeed(seed))
		event = event.Uint64("seed", seed)
		if len(opts) == 1 {
			// A seed alone selects PCG
			algorithm = random.PCG
		}
	}
	event.Str("algorithm", string(algorithm)).Msg("creating generator")
	return random.New(opts...)
}

// execute runs the command tree on the given command line arguments.
func (a *app) execute(args []string) error {
	a.root.SetArgs(escapeNegativeNumbers(a.root, args))
	return a.root.Execute()
}

// call invokes a rand module builtin and prints its result.
func (a *app) call(cmd *cobra.Command, name string, args ...object.Object) error {
	attr, ok := a.module.GetAttr(name)
	if !ok {
		return fmt.Errorf("rand module has no function %q", name)
	}
	fn, ok := attr.(object.Callable)
	if !ok {
		return fmt.Errorf("rand.%s is not callable", name)
	}
	a.logger.Debug().Str("func", name).Int("args", len(args)).Msg("calling builtin")
	result, err := fn.Call(cmd.Context(), args...)
	if err != nil {
		return err
	}
	output, err := getOutput(result, a.config.GetString("output"))
	if err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}
	return nil
}
