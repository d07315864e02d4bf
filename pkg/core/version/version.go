// ============================================================================
// meinRECHENWERK (mRW) - Lokale Rechenplattform
// ============================================================================
//
// Package:     version
// Description: Central version management for all mRW components
// Created:     2026-07-20
// License:     MIT
// ============================================================================

package version

// Version constants for all mRW components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Engine = "0.1.0"
	Server = "0.1.0"
	REPL   = "0.1.0"
	CLI    = "0.1.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "engine":
		return Engine
	case "server":
		return Server
	case "repl":
		return REPL
	case "cli":
		return CLI
	default:
		return Platform
	}
}
