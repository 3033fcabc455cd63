// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"os"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCmd  Command
		wantRest []string
	}{
		{"no args", []string{"intentdesk"}, CmdTUI, nil},
		{"tui", []string{"intentdesk", "tui"}, CmdTUI, []string{}},
		{"ask", []string{"intentdesk", "ask", "find", "a", "tutor"}, CmdAsk, []string{"find", "a", "tutor"}},
		{"serve", []string{"intentdesk", "serve"}, CmdServe, []string{}},
		{"version", []string{"intentdesk", "version"}, CmdVersion, nil},
		{"version flag", []string{"intentdesk", "--version"}, CmdVersion, nil},
		{"help", []string{"intentdesk", "help"}, CmdHelp, nil},
		{"bare prompt", []string{"intentdesk", "need", "a", "ride"}, CmdAsk, []string{"need", "a", "ride"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := os.Args
			os.Args = tt.args
			defer func() { os.Args = old }()

			cmd, rest := Parse()
			if cmd != tt.wantCmd {
				t.Errorf("command = %v, want %v", cmd, tt.wantCmd)
			}
			if len(rest) != len(tt.wantRest) {
				t.Fatalf("rest = %v, want %v", rest, tt.wantRest)
			}
			for i := range rest {
				if rest[i] != tt.wantRest[i] {
					t.Errorf("rest[%d] = %q, want %q", i, rest[i], tt.wantRest[i])
				}
			}
		})
	}
}
