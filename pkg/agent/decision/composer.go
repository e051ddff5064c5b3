package decision

import (
	"context"
	"fmt"
	"strings"

	"smart-warehouse-be/internal/constant"
	"smart-warehouse-be/internal/entity"
	"smart-warehouse-be/pkg/llm"
)

// Composer assembles the single reasoning prompt for an arrival and runs
// one generation pass. It never retries; a generation failure belongs to
// the caller.
type Composer struct {
	generator llm.LLMProvider
}

func NewComposer(generator llm.LLMProvider) *Composer {
	return &Composer{generator: generator}
}

// FactsSummary renders the resolved facts as one French sentence, or the
// no-active-order sentinel when the plate matched nothing.
func FactsSummary(facts *entity.ArrivalFacts) string {
	if facts == nil {
		return constant.NoActiveOrderSentinel
	}
	return fmt.Sprintf("Camion %s pour le client %s. Produit: %s. Statut: %s.",
		facts.TruckType, facts.ClientName, facts.ProductName, facts.OrderStatus)
}

// RetrievalQuery builds the knowledge-base query for an arrival. Unknown
// clients still get a query so generic site rules surface.
func RetrievalQuery(facts *entity.ArrivalFacts) string {
	clientName := constant.UnknownClientFallback
	if facts != nil {
		clientName = facts.ClientName
	}
	return fmt.Sprintf("Consignes pour le client %s", clientName)
}

// Decide runs the gate reasoning prompt and returns the raw decision text.
func (c *Composer) Decide(ctx context.Context, facts *entity.ArrivalFacts, snippets []string, plate, arrivalTime string) (string, error) {
	var prompt strings.Builder

	prompt.WriteString("[INST] You are the Warehouse Intelligence Agent.\n")
	prompt.WriteString("Decide the course of action for this arrival.\n\n")
	prompt.WriteString("FACTS: ")
	prompt.WriteString(FactsSummary(facts))
	prompt.WriteString("\nRULES: ")
	prompt.WriteString(strings.Join(snippets, "\n---\n"))
	prompt.WriteString("\nVEHICLE: ")
	prompt.WriteString(plate)
	prompt.WriteString(" at ")
	prompt.WriteString(arrivalTime)
	prompt.WriteString("\n\nAssign a Gate and Priority. [/INST]")

	analysis, err := c.generator.Generate(ctx, prompt.String())
	if err != nil {
		return "", fmt.Errorf("gate decision generation: %w", err)
	}
	return analysis, nil
}
