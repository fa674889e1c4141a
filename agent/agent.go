// Package agent elaborates the deterministic market commentary with a
// generative model. It is strictly optional: without a configured Gemini
// client the templated commentary stands on its own.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemInstruction = `You are a macro-economics analyst. You are given the
summary of an analysis comparing the nominal growth of an equity index with
inflation-adjusted purchasing power over a date range. Comment on it for a
retail investor, in at most two short paragraphs of markdown. Never invent
numbers: only use the figures provided in the briefing.`

// Analyst is a chat with the macro-economics analyst persona.
type Analyst struct {
	ModelName string
	chat      *genai.Chat
}

// NewAnalyst returns an Analyst on the default model.
func NewAnalyst() *Analyst { return &Analyst{ModelName: defaultModel} }

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, a.ModelName, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send.
func (a *Analyst) Ask(ctx context.Context, text string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: text})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// Elaborate runs a one-shot elaboration of the briefing (the deterministic
// commentary plus the figures it is based on).
func (a *Analyst) Elaborate(ctx context.Context, client *genai.Client, briefing string) (string, error) {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return "", err
		}
	}
	return a.Ask(ctx, briefing)
}

const prompt = "mlens> "

// Run starts an interactive REPL over the analysis. The briefing is sent
// first so the analyst has the figures in context, then the user can dig in.
func (a *Analyst) Run(ctx context.Context, client *genai.Client, w io.Writer, r io.Reader, briefing string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	if briefing != "" {
		content, err := a.Ask(ctx, briefing)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, content)
	}

	fmt.Fprintln(w, "Ask about the analysis. Type 'bye' to exit.")
	in := bufio.NewReader(r)
	for {
		fmt.Fprint(w, prompt)
		input, err := in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil // Clean exit on Ctrl+D
			}
			return err
		}
		if strings.TrimSpace(input) == "bye" {
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}

		content, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, content)
	}
}
