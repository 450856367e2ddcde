package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hookean/hookean"
)

// rootCmd is the base Cobra command. The physical constants are shared
// by every subcommand and can be overridden by flag or HOOKEAN_*
// environment variable.
var rootCmd = &cobra.Command{
	Use:           "hookean",
	Short:         "Thermal spring stiffness estimation",
	Long:          `hookean draws spring extensions from a thermal half-Gaussian model and recovers the stiffness by maximum likelihood.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Float64("gas-constant", hookean.DefaultGasConstant, "gas constant R in J/(mol·K)")
	rootCmd.PersistentFlags().Float64("temperature", hookean.DefaultTemperature, "bath temperature T in kelvin")

	viper.SetEnvPrefix("hookean")
	viper.AutomaticEnv()
	viper.BindPFlag("gas_constant", rootCmd.PersistentFlags().Lookup("gas-constant"))
	viper.BindPFlag("temperature", rootCmd.PersistentFlags().Lookup("temperature"))
}

// modelFromConfig builds the Model from the resolved configuration.
func modelFromConfig() hookean.Model {
	return hookean.Model{
		GasConstant: viper.GetFloat64("gas_constant"),
		Temperature: viper.GetFloat64("temperature"),
	}
}
