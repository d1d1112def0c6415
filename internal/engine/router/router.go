// Package router fans a flushed batch out to its consumers.
package router

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/herald/internal/core/domain"
)

// Router groups a batch's events by agent. One event may feed several
// agents (fan-out); each agent's RoutedWork carries only that agent's
// events, an aggregate priority, and a context summary scoped to it.
type Router struct{}

// New creates a Router.
func New() *Router {
	return &Router{}
}

// Route returns one RoutedWork per distinct agent named in the batch,
// ordered by first appearance so output is deterministic.
func (r *Router) Route(batch *domain.PendingBatch) []domain.RoutedWork {
	if batch == nil || len(batch.Events) == 0 {
		return nil
	}

	byAgent := make(map[string][]domain.ChangeEvent)
	var order []string

	for _, event := range batch.Events {
		for _, agent := range event.Agents {
			if _, seen := byAgent[agent]; !seen {
				order = append(order, agent)
			}
			byAgent[agent] = append(byAgent[agent], event)
		}
	}

	work := make([]domain.RoutedWork, 0, len(order))
	for _, agent := range order {
		events := byAgent[agent]
		priority := aggregatePriority(events)
		work = append(work, domain.RoutedWork{
			Agent:          agent,
			Events:         events,
			Priority:       priority,
			ContextSummary: summarize(agent, events, priority),
		})
	}
	return work
}

func aggregatePriority(events []domain.ChangeEvent) domain.Priority {
	p := domain.Low
	for _, event := range events {
		p = p.Max(event.Priority)
	}
	return p
}

// summarize builds the compact per-agent description passed to the workflow
// executor, e.g. "readme-updater: 3 component/config files (high)".
func summarize(agent string, events []domain.ChangeEvent, priority domain.Priority) string {
	var categories []string
	for _, event := range events {
		if !slices.Contains(categories, event.Category) {
			categories = append(categories, event.Category)
		}
	}
	slices.Sort(categories)

	return fmt.Sprintf("%s: %d %s files (%s)",
		agent, len(events), strings.Join(categories, "/"), priority)
}
