// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
)

// Version information, synced from main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command identifies which entry point to run.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdServe
	CmdVersion
	CmdHelp
)

// Parse maps os.Args onto a command plus its remaining arguments. No
// arguments means the TUI.
func Parse() (Command, []string) {
	args := os.Args[1:]
	if len(args) == 0 {
		return CmdTUI, nil
	}

	switch args[0] {
	case "tui":
		return CmdTUI, args[1:]
	case "ask":
		return CmdAsk, args[1:]
	case "serve":
		return CmdServe, args[1:]
	case "version", "--version", "-v":
		return CmdVersion, nil
	case "help", "--help", "-h":
		return CmdHelp, nil
	default:
		// Unknown word: treat the whole tail as an ask prompt.
		return CmdAsk, args
	}
}

// HandleVersion prints build information.
func HandleVersion() {
	fmt.Printf("intentdesk %s (%s, built %s)\n", Version, GitCommit, BuildDate)
}

// HandleHelp prints usage.
func HandleHelp() {
	fmt.Print(`intentdesk - terminal client for the intent assistant

Usage:
  intentdesk             Launch the TUI
  intentdesk ask [text]  One-shot chat in the plain terminal
  intentdesk serve       Run the development stub server
  intentdesk version     Print build information

Environment:
  INTENTDESK_SERVER_URL  Backend base address (default http://localhost:5001)
  INTENTDESK_USERNAME    Username for ask and the login prompt
`)
}
