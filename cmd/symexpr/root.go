// Package main implements the symexpr command-line interface.
//
// The CLI is thin glue over the library: it reads an expression and
// name=value variable bindings from the command line (or a YAML file),
// picks the real or complex numeric domain, and delegates evaluation
// and differentiation to the core packages.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/asevik/symexpr"
)

var (
	flagComplex  bool
	flagDebug    bool
	flagVarsFile string
)

var rootCmd = &cobra.Command{
	Use:   "symexpr",
	Short: "Evaluate and symbolically differentiate mathematical expressions",
	Long: `symexpr evaluates and symbolically differentiates scalar expressions
built from constants, variables, the operators + - * / ^ and the
functions sin, cos, ln and exp.

Expressions are evaluated over the real domain by default. The complex
domain is selected with --complex, or automatically when the expression
or a binding contains an imaginary literal such as 2i.`,
	SilenceUsage:     true,
	PersistentPreRun: func(*cobra.Command, []string) { initLogging() },
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagComplex, "complex", false, "force the complex numeric domain")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagVarsFile, "vars-file", "", "YAML file with variable bindings")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(versionCmd)
}

// initLogging configures the global zerolog logger. Debug output goes to
// stderr so results on stdout stay machine-readable.
func initLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the symexpr version",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(symexpr.Version())
	},
}
