package intent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"smart-warehouse-be/pkg/llm"
)

// ErrUnparsableReply means the model answered with text that contains no
// brace-delimited JSON object. The caller shows a localized technical
// failure message instead of the raw reply.
var ErrUnparsableReply = errors.New("model reply contains no parseable JSON object")

type Details struct {
	Client        string `json:"client"`
	Product       string `json:"product"`
	Quantity      int    `json:"quantity"`
	NewClientName string `json:"new_client_name"`
}

// Intent is the structured classification of one chat turn.
type Intent struct {
	Response string  `json:"response"`
	Intent   string  `json:"intent"`
	Details  Details `json:"details"`
}

// Snapshot is the read-only warehouse view injected into the prompt,
// fetched fresh per turn.
type Snapshot struct {
	Clients  []string
	Products []ProductInfo
}

type ProductInfo struct {
	Name  string
	Stock int
	Price float64
}

func (s Snapshot) Summary() string {
	productNames := make([]string, 0, len(s.Products))
	for _, p := range s.Products {
		productNames = append(productNames, p.Name)
	}
	return fmt.Sprintf("Available Clients: %s\nAvailable Products: %s",
		strings.Join(s.Clients, ", "), strings.Join(productNames, ", "))
}

// Extractor turns a free-form user message into a structured intent by
// prompting the receptionist persona and parsing its JSON reply.
type Extractor struct {
	generator llm.LLMProvider
}

func NewExtractor(generator llm.LLMProvider) *Extractor {
	return &Extractor{generator: generator}
}

func (e *Extractor) Extract(ctx context.Context, snapshot Snapshot, history []string, userMessage string) (*Intent, error) {
	prompt := buildReceptionistPrompt(snapshot, history, userMessage)

	reply, err := e.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("intent generation: %w", err)
	}

	return ParseStructuredReply(reply)
}

func buildReceptionistPrompt(snapshot Snapshot, history []string, userMessage string) string {
	var b strings.Builder

	b.WriteString("You are the SmartWarehouse Assistant.\n")
	b.WriteString("Context: ")
	b.WriteString(snapshot.Summary())
	b.WriteString("\n\nRecent History:\n")
	b.WriteString(strings.Join(history, "\n"))
	b.WriteString("\n\nUser Message: \"")
	b.WriteString(userMessage)
	b.WriteString("\"\n\n")
	b.WriteString("IMPORTANT: Respond ONLY with a JSON object.\n")
	b.WriteString("Tasks:\n")
	b.WriteString("1. Respond politely.\n")
	b.WriteString("2. If you see a name and it's NOT in the clients list, suggest registering.\n")
	b.WriteString("3. If you have all info (client + product + qty), set intent to \"order\".\n\n")
	b.WriteString("Output format:\n")
	b.WriteString("{\n")
	b.WriteString("    \"response\": \"Your reply\",\n")
	b.WriteString("    \"intent\": \"order\" | \"register\" | \"chat\",\n")
	b.WriteString("    \"details\": { \"client\": \"name\", \"product\": \"name\", \"quantity\": int, \"new_client_name\": \"name\" }\n")
	b.WriteString("}\n")

	return b.String()
}

// ParseStructuredReply extracts the JSON object from a model reply using
// the greedy first-brace-to-last-brace slice. Local models wrap their JSON
// in prose more often than not; the lenient heuristic is intentional.
func ParseStructuredReply(reply string) (*Intent, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, ErrUnparsableReply
	}

	var parsed Intent
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return nil, ErrUnparsableReply
	}
	return &parsed, nil
}
