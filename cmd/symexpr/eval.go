package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/parser"
)

var evalCmd = &cobra.Command{
	Use:   "eval EXPR [name=value...]",
	Short: "Evaluate an expression with variable bindings",
	Long: `Evaluates an expression. Variable bindings are given as name=value
arguments; values may themselves be expressions ("pi=3.14159", "z=1+2i",
"k=2^10") as long as they contain no free variables.`,
	Example: `  symexpr eval "2 + 3"
  symexpr eval "x^2 + sin(x)" x=2
  symexpr eval --complex "exp(x)" x=3.14159i
  symexpr eval "a*x+b" --vars-file vars.yaml x=2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	input := args[0]
	if useComplex(input, args[1:]) {
		return evalIn(cmd, domain.Complex{}, input, args[1:])
	}
	return evalIn(cmd, domain.Real{}, input, args[1:])
}

func evalIn[T any](cmd *cobra.Command, d domain.Domain[T], input string, bindArgs []string) error {
	log.Debug().Str("domain", d.Name()).Str("expr", input).Msg("evaluating")

	vars, err := collectBindings(d, flagVarsFile, bindArgs)
	if err != nil {
		return err
	}

	e, err := parser.Parse(input, d)
	if err != nil {
		return err
	}
	log.Debug().Str("parsed", e.String()).Msg("parsed expression")

	if missing := missingBindings(e.Variables(), vars); len(missing) > 0 {
		return fmt.Errorf("missing bindings for: %s", strings.Join(missing, ", "))
	}

	v, err := e.Eval(vars)
	if err != nil {
		return err
	}
	cmd.Println(d.Format(v))
	return nil
}

// useComplex decides the numeric domain: the --complex flag wins, else
// any imaginary literal in the expression or a binding value selects the
// complex domain.
func useComplex(input string, bindArgs []string) bool {
	if flagComplex {
		return true
	}
	if domain.LooksComplex(input) {
		return true
	}
	for _, a := range bindArgs {
		if _, val, ok := strings.Cut(a, "="); ok && domain.LooksComplex(val) {
			return true
		}
	}
	return false
}

// missingBindings returns the free variables without a binding, in
// sorted order (names comes sorted from Variables).
func missingBindings[T any](names []string, vars map[string]T) []string {
	var missing []string
	for _, name := range names {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
