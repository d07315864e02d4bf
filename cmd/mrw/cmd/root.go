package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mrw",
	Short: "meinRECHENWERK - Lokale Rechenplattform",
	Long: `meinRECHENWERK ist eine leichtgewichtige, lokal installierbare
Rechenplattform für den Einzelarbeitsplatz.

Befehle:
  eval     - Ausdruck auswerten
  lex      - Ausdruck in Token zerlegen
  parse    - Syntaxbaum eines Ausdrucks anzeigen
  repl     - Interaktiver Rechner (TUI)
  serve    - Auswertungsserver (HTTP/WebSocket)
  version  - Versionsinformationen`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./mrw.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
