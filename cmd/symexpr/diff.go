package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/parser"
)

var diffBy string

var diffCmd = &cobra.Command{
	Use:   "diff EXPR [name=value...]",
	Short: "Symbolically differentiate an expression",
	Long: `Prints the partial derivative of an expression with respect to one
variable (--by, default "x"). When bindings are supplied, the derivative
is additionally evaluated at that point and the value printed on a
second line.`,
	Example: `  symexpr diff "x^2"
  symexpr diff "x*y + sin(x)" --by y
  symexpr diff "ln(x)" x=1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffBy, "by", "x", "variable to differentiate with respect to")
}

func runDiff(cmd *cobra.Command, args []string) error {
	input := args[0]
	if useComplex(input, args[1:]) {
		return diffIn(cmd, domain.Complex{}, input, args[1:])
	}
	return diffIn(cmd, domain.Real{}, input, args[1:])
}

func diffIn[T any](cmd *cobra.Command, d domain.Domain[T], input string, bindArgs []string) error {
	log.Debug().Str("domain", d.Name()).Str("expr", input).Str("by", diffBy).Msg("differentiating")

	e, err := parser.Parse(input, d)
	if err != nil {
		return err
	}
	deriv := e.Diff(diffBy)
	cmd.Println(deriv.String())

	if len(bindArgs) == 0 && flagVarsFile == "" {
		return nil
	}
	vars, err := collectBindings(d, flagVarsFile, bindArgs)
	if err != nil {
		return err
	}
	v, err := deriv.Eval(vars)
	if err != nil {
		return err
	}
	cmd.Println(d.Format(v))
	return nil
}
