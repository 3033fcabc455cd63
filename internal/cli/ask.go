// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/intentdesk-tui/internal/api"
	"github.com/jeranaias/intentdesk-tui/internal/config"
	"github.com/jeranaias/intentdesk-tui/internal/model"
)

// HandleAsk runs a plain-terminal conversation loop against the backend.
// With arguments, the joined text is sent as the opening message.
func HandleAsk(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	username := cfg.User.DefaultUsername
	if username == "" {
		username = "terminal-user"
	}

	client := api.NewClient(cfg.Server.URL)
	thread := model.NewThread(username)
	fmt.Println(thread.Messages[0].Content)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	pending := strings.TrimSpace(strings.Join(args, " "))
	for {
		message := pending
		pending = ""
		if message == "" {
			input, err := line.Prompt("you> ")
			if err != nil {
				// Ctrl-C or EOF ends the conversation.
				fmt.Println()
				return nil
			}
			message = strings.TrimSpace(input)
			if message == "" {
				continue
			}
			if message == "/quit" || message == "/exit" {
				return nil
			}
			line.AppendHistory(message)
		}

		thread.AddUserMessage(message)
		reply, err := client.Chat(context.Background(), api.ChatRequest{
			UserID:   username,
			ThreadID: thread.ID,
			Message:  message,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		thread.AddModelMessage(reply)
		fmt.Println("assistant> " + reply)

		if api.IsCompletion(reply) {
			fmt.Println("Your request has been posted.")
			return nil
		}
	}
}
