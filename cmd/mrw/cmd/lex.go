package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex <ausdruck>",
	Short: "Zerlegt einen Ausdruck in Token",
	Long: `Zerlegt einen Ausdruck in seine Token und zeigt sie tabellarisch an.

Positionen sind nullbasiert (Zeile:Spalte).

Beispiele:
  mrw lex "pi = 22 / 7"
  mrw lex "(2 + 3) * 4"`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	engine, err := newEngine(cfg)
	if err != nil {
		return fmt.Errorf("Engine konnte nicht erstellt werden: %v", err)
	}

	tokens, err := engine.Tokenize(args[0])
	if err != nil {
		printExprError(err)
		os.Exit(1)
	}

	fmt.Printf("%-20s %-15s %s\n", "TYP", "LEXEM", "POSITION")
	fmt.Println(strings.Repeat("-", 44))

	for _, tok := range tokens {
		lexeme := tok.Value
		if lexeme == "" {
			lexeme = "-"
		}
		fmt.Printf("%-20s %-15s %d:%d\n", tok.Type, lexeme, tok.Line, tok.Column)
	}

	fmt.Println()
	fmt.Printf("Gesamt: %d Token(s)\n", len(tokens))

	return nil
}
