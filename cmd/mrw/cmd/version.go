package cmd

import (
	"fmt"
	"runtime"

	"github.com/msto63/mRW/pkg/core/version"
	"github.com/spf13/cobra"
)

var (
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Zeigt die Version an",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("meinRECHENWERK v%s\n", version.Platform)
		fmt.Printf("  Engine:     %s\n", version.Engine)
		fmt.Printf("  Server:     %s\n", version.Server)
		fmt.Printf("  REPL:       %s\n", version.REPL)
		fmt.Printf("  Git Commit: %s\n", GitCommit)
		fmt.Printf("  Build Date: %s\n", BuildDate)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
