package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msto63/mRW/foundation/core/config"
	rwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet den Auswertungsserver",
	Long: `Startet den mRW Auswertungsserver (HTTP und WebSocket).

Der Server verwaltet Sitzungen mit eigenen Variablenumgebungen und
wertet Ausdrücke über REST- und WebSocket-Schnittstellen aus.

Beispiele:
  mrw serve                      # Mit Defaults starten
  mrw serve --port 9000          # Eigener Port
  mrw serve --config mrw.toml    # Mit Config-Datei`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "Bind-Adresse (default: 0.0.0.0)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP-Port (default: 8372)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfigOptions(true)

	srvCfg := server.DefaultConfig()
	applyServerConfig(&srvCfg, cfg)
	if serveHost != "" {
		srvCfg.Host = serveHost
	}
	if servePort != 0 {
		srvCfg.Port = servePort
	}

	srv, err := server.New(srvCfg)
	if err != nil {
		return fmt.Errorf("Server konnte nicht erstellt werden: %v", err)
	}

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Println("meinRECHENWERK")
	fmt.Println("==============")
	fmt.Println("Starte Auswertungsserver...")
	fmt.Println()

	if err := srv.StartAsync(); err != nil {
		return err
	}

	fmt.Printf("  [+] Server auf %s\n", srv.Address())
	if cfg != nil && cfg.FilePath() != "" {
		fmt.Printf("  [+] Config: %s\n", cfg.FilePath())
		watchLogLevel(cfg, srv)
	}

	fmt.Println()
	fmt.Println("Drücke Ctrl+C zum Beenden")
	fmt.Println()
	fmt.Printf("Eval API: http://localhost:%d/api/v1/eval\n", srvCfg.Port)
	fmt.Printf("Health Check: http://localhost:%d/health\n", srvCfg.Port)

	<-sigCh
	fmt.Println("\nStoppe Server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Stop(shutdownCtx)
}

// applyServerConfig merges configuration file values into the server config
func applyServerConfig(srvCfg *server.Config, cfg *config.Config) {
	if cfg == nil {
		return
	}

	srvCfg.Host = cfg.GetString("server.host", srvCfg.Host)
	srvCfg.Port = cfg.GetInt("server.port", srvCfg.Port)
	srvCfg.ReadTimeout = cfg.GetDuration("server.read_timeout", srvCfg.ReadTimeout)
	srvCfg.WriteTimeout = cfg.GetDuration("server.write_timeout", srvCfg.WriteTimeout)
	srvCfg.SessionTTL = cfg.GetDuration("server.session_ttl", srvCfg.SessionTTL)
	srvCfg.MaxSessions = cfg.GetInt("server.max_sessions", srvCfg.MaxSessions)
	srvCfg.MaxInputLength = cfg.GetInt("engine.max_input_length", srvCfg.MaxInputLength)
	srvCfg.LogLevel = cfg.GetString("logging.level", "")
	srvCfg.LogFormat = cfg.GetString("logging.format", "")
	srvCfg.Variables = configVariables(cfg)
}

// watchLogLevel applies logging.level changes from the watched configuration
// file without a server restart
func watchLogLevel(cfg *config.Config, srv *server.Server) {
	cfg.OnChange(func(oldCfg, newCfg *config.Config) {
		oldLevel := oldCfg.GetString("logging.level", "info")
		newLevel := newCfg.GetString("logging.level", "info")
		if oldLevel == newLevel {
			return
		}

		level, err := rwlog.ParseLevel(newLevel)
		if err != nil {
			fmt.Printf("  [!] Ungültiges Log-Level in Config: %s\n", newLevel)
			return
		}

		srv.Logger().SetLevel(level)
		fmt.Printf("  [+] Log-Level geändert: %s\n", newLevel)
	})
}
