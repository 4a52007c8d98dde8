// Package insight supplies the default merge insight generator: one of a
// fixed set of message templates, picked at random per merge.
package insight

import (
	"fmt"

	"lucidia-engine/domain/core/valueobjects"
	"lucidia-engine/domain/events"
	"lucidia-engine/pkg/random"
)

// TemplateGenerator fills a randomly chosen template with the merge's
// concepts and resulting mastery.
type TemplateGenerator struct {
	rng random.Source
}

// NewTemplateGenerator creates a generator backed by the given random
// source.
func NewTemplateGenerator(rng random.Source) *TemplateGenerator {
	return &TemplateGenerator{rng: rng}
}

// InsightFor returns the message for one merge event.
func (g *TemplateGenerator) InsightFor(event events.TilesMerged) string {
	mastery := valueobjects.MasteryForValue(event.ResultValue)

	templates := []string{
		fmt.Sprintf("%s + %s = deeper understanding of %s!",
			event.FirstConcept, event.SecondConcept, event.ResultConcept),
		fmt.Sprintf("Knowledge fusion! Your %s skills combined with %s.",
			event.FirstConcept, event.SecondConcept),
		fmt.Sprintf("Level up! You now have %s in %s.",
			mastery, event.ResultConcept),
		fmt.Sprintf("Nice merge! %d points of knowledge in %s.",
			event.ResultValue, event.Domain),
		fmt.Sprintf("Synthesis complete: %s (%s)",
			event.ResultConcept, mastery.Description()),
	}

	return templates[g.rng.Intn(len(templates))]
}
