package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <ausdruck>",
	Short: "Zeigt den Syntaxbaum eines Ausdrucks",
	Long: `Parst einen Ausdruck und zeigt den Syntaxbaum als eingerückte Liste,
einen Knoten pro Zeile mit seiner Quellposition.

Beispiele:
  mrw parse "pi = 22 / 7"
  mrw parse "1 < 2 < 3"`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	engine, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("Engine konnte nicht erstellt werden: %v", err)
	}

	tree, err := engine.TreeString(args[0])
	if err != nil {
		printExprError(err)
		os.Exit(1)
	}

	// Each tree line already carries its newline
	fmt.Print(tree)

	return nil
}
