// ============================================================================
// meinRECHENWERK (mRW) - Lokale Rechenplattform
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the mRW REPL TUI
// Created:     2026-07-24
// License:     MIT
// ============================================================================

package cmd

import (
	rwstringx "github.com/msto63/mRW/foundation/utils/stringx"
	"github.com/msto63/mRW/internal/tui/repl"
	"github.com/spf13/cobra"
)

var (
	replShowTokens bool
	replShowAST    bool
)

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"rechner"},
	Short:   "Startet den interaktiven Rechner",
	Long: `Startet den interaktiven mRW Rechner.

Der Rechner bietet eine Terminal-UI zum Auswerten von Ausdrücken:

  - Ergebnisse mit Auswertungsdauer
  - Token- und Syntaxbaum-Anzeige zuschaltbar
  - Variablen bleiben während der Sitzung erhalten
  - Eingabe-Historie über Sitzungen hinweg

Tastenkürzel:
  Enter       Ausdruck auswerten
  ↑/↓         Eingabe-Historie
  F2          Token-Anzeige umschalten
  F3          AST-Anzeige umschalten
  PgUp/PgDn   Blättern
  Ctrl+L      Verlauf leeren
  Ctrl+C      Beenden`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replShowTokens, "tokens", false, "Token-Anzeige beim Start aktivieren")
	replCmd.Flags().BoolVar(&replShowAST, "ast", false, "AST-Anzeige beim Start aktivieren")
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	replCfg := repl.DefaultConfig()
	if cfg != nil {
		replCfg.EngineName = rwstringx.FirstNonBlank(cfg.GetString("engine.name", ""), replCfg.EngineName)
		replCfg.MaxInputLength = cfg.GetInt("engine.max_input_length", replCfg.MaxInputLength)
		replCfg.ShowTokens = cfg.GetBool("repl.show_tokens", false)
		replCfg.ShowAST = cfg.GetBool("repl.show_ast", false)
		replCfg.Variables = configVariables(cfg)
	}

	// Flags schalten zu, was die Config nicht schon aktiviert hat
	if replShowTokens {
		replCfg.ShowTokens = true
	}
	if replShowAST {
		replCfg.ShowAST = true
	}

	return repl.Run(replCfg)
}
