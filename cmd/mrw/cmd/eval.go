package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	rwmathx "github.com/msto63/mRW/foundation/utils/mathx"
	"github.com/spf13/cobra"
)

var (
	evalShowTokens bool
	evalShowAST    bool
	evalVars       []string
	evalPrecision  int
)

var evalCmd = &cobra.Command{
	Use:   "eval <ausdruck>",
	Short: "Wertet einen Ausdruck aus",
	Long: `Wertet einen einzeiligen Ausdruck aus und gibt das Ergebnis aus.

Zuweisungen wie "x = 42" geben den zugewiesenen Wert zurück.
Vergleiche liefern 1 (wahr) oder 0 (falsch).

Beispiele:
  mrw eval "2 + 3 * 4"
  mrw eval "(2 + 3) * 4" --ast
  mrw eval "x * 2" --var x=21
  mrw eval "22 / 7" --precision 4`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().BoolVar(&evalShowTokens, "tokens", false, "Token vor dem Ergebnis anzeigen")
	evalCmd.Flags().BoolVar(&evalShowAST, "ast", false, "Syntaxbaum vor dem Ergebnis anzeigen")
	evalCmd.Flags().StringArrayVar(&evalVars, "var", nil, "Variable vorbelegen (name=wert, wiederholbar)")
	evalCmd.Flags().IntVar(&evalPrecision, "precision", -1, "Nachkommastellen (-1 = kürzeste Darstellung)")
}

func runEval(cmd *cobra.Command, args []string) error {
	expression := args[0]

	cfg := loadConfig()
	engine, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("Engine konnte nicht erstellt werden: %v", err)
	}

	for _, binding := range evalVars {
		name, value, err := parseVarFlag(binding)
		if err != nil {
			return err
		}
		engine.Environment().Set(name, value)
	}

	if evalShowTokens {
		tokens, err := engine.Tokenize(expression)
		if err != nil {
			printExprError(err)
			os.Exit(1)
		}
		parts := make([]string, len(tokens))
		for i, tok := range tokens {
			parts[i] = tok.String()
		}
		fmt.Println(strings.Join(parts, " "))
	}

	if evalShowAST {
		tree, err := engine.TreeString(expression)
		if err != nil {
			printExprError(err)
			os.Exit(1)
		}
		fmt.Print(tree)
	}

	result, err := engine.Evaluate(context.Background(), expression)
	if err != nil {
		printExprError(err)
		os.Exit(1)
	}

	fmt.Println(formatResult(result.Value, evalPrecision))
	return nil
}

// parseVarFlag splits a name=value binding from the --var flag
func parseVarFlag(binding string) (string, float64, error) {
	parts := strings.SplitN(binding, "=", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("ungültige Variable %q (erwartet: name=wert)", binding)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return "", 0, fmt.Errorf("ungültige Variable %q (leerer Name)", binding)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("ungültiger Wert für Variable %s: %v", name, err)
	}

	return name, value, nil
}

// formatResult renders the result value honoring the precision flag
func formatResult(value float64, precision int) string {
	if precision < 0 {
		return rwmathx.FormatValue(value)
	}
	return rwmathx.FormatFixed(value, precision)
}
