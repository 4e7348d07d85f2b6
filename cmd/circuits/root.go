package main

import (
	"fmt"
	"os"

	"github.com/junctionbox/aoc/internal/circuits"
	"github.com/junctionbox/aoc/internal/logutil"
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "circuits [input]",
		Short:         "Connect junction boxes closest first and report circuit sizes",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				v.Set("input", args[0])
			}
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := circuits.LoadConfig(v)
			if err != nil {
				return err
			}
			logger, err := logutil.New(cfg.Debug)
			if err != nil {
				return errors.Trace(err)
			}
			defer logger.Sync()

			ans, err := circuits.Solve(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ans.Part1)
			fmt.Fprintln(cmd.OutOrStdout(), ans.Part2)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .circuits.yaml)")
	flags.StringP("input", "i", "", "puzzle input file")
	flags.IntP("connections", "n", 1000, "number of closest pairs to connect for part 1")
	flags.IntP("top", "k", 3, "number of largest circuits multiplied for part 1")
	flags.Bool("debug", false, "debug logging")
	for _, name := range []string{"input", "connections", "top", "debug"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}
	return cmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".circuits")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("CIRCUITS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's fine if no config file is found; we use defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return errors.Annotate(err, "read config")
	}
	return nil
}
