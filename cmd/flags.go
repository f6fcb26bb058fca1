package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags makes viper read the flags under their own names, so a flag
// given on the command line overrides the config file and environment.
func bindFlags(flags ...*pflag.Flag) {
	for _, flag := range flags {
		cobra.CheckErr(viper.BindPFlag(flag.Name, flag))
	}
}
