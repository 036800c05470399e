package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yanqian/weather-assistant/internal/bootstrap"
	"github.com/yanqian/weather-assistant/internal/domain/assistant"
	"github.com/yanqian/weather-assistant/internal/domain/session"
	"github.com/yanqian/weather-assistant/internal/infra/config"
	"github.com/yanqian/weather-assistant/pkg/logger"
)

const turnTimeout = time.Minute

// maxHistoryMessages keeps the last session.MaxHistory exchanges.
const maxHistoryMessages = 2 * session.MaxHistory

func newChatCmd() *cobra.Command {
	var showData bool
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask the assistant; without a message an interactive session starts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			svc, err := bootstrap.NewAssistant(cfg, logger.NewCLI(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			c := &chatSession{
				svc:      svc,
				state:    session.New(uuid.NewString()),
				out:      cmd.OutOrStdout(),
				showData: showData,
			}
			if len(args) > 0 {
				c.ask(cmd.Context(), strings.Join(args, " "))
				return nil
			}
			return c.repl(cmd.Context(), cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVar(&showData, "data", false, "print intent, city and activity of each reply")
	return cmd
}

// chatSession keeps one conversation alive across turns of the REPL.
type chatSession struct {
	svc      assistant.Service
	state    *session.State
	history  []assistant.Message
	out      io.Writer
	showData bool
}

func (c *chatSession) repl(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(c.out, "Weather assistant. Type /exit to quit, /clear to forget the conversation.")
	scanner := bufio.NewScanner(in)
	for {
		promptColor.Fprint(c.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "":
			continue
		case "/exit", "exit", "quit":
			return nil
		case "/clear":
			c.state = session.New(uuid.NewString())
			c.history = nil
			mutedColor.Fprintln(c.out, "conversation cleared")
			continue
		}
		c.ask(ctx, input)
	}
}

func (c *chatSession) ask(ctx context.Context, input string) {
	if ctx == nil {
		ctx = context.Background()
	}
	turnCtx, cancel := context.WithTimeout(ctx, turnTimeout)
	defer cancel()

	c.remember(assistant.Message{Role: assistant.RoleUser, Content: input})
	resp := c.svc.Chat(turnCtx, c.state, assistant.ChatRequest{Messages: c.history, SessionID: c.state.ID})
	c.remember(assistant.Message{Role: assistant.RoleAssistant, Content: resp.Response})

	replyColor(resp.ResponseType).Fprintln(c.out, resp.Response)
	if c.showData && resp.StructuredData != nil {
		d := resp.StructuredData
		mutedColor.Fprintf(c.out, "[%s] intent=%s city=%s activity=%s time=%s\n", resp.ResponseType, d.Intent, d.City, d.Activity, d.TimeContext)
	}
}

func (c *chatSession) remember(m assistant.Message) {
	c.history = append(c.history, m)
	if over := len(c.history) - maxHistoryMessages; over > 0 {
		c.history = append(c.history[:0:0], c.history[over:]...)
	}
}
