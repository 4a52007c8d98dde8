package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lucidia-engine/pkg/random"
)

func TestForSpawn(t *testing.T) {
	namer := NewConceptNamer(random.New(1))

	t.Run("uses the domain vocabulary with a tier suffix", func(t *testing.T) {
		concept := namer.ForSpawn("python", 2)

		parts := strings.SplitN(concept, ":", 2)
		assert.Contains(t, spawnVocabulary["python"], parts[0])
		assert.Equal(t, "basics", parts[1])
	})

	t.Run("falls back to the generic concept for unknown domains", func(t *testing.T) {
		assert.Equal(t, "concept:basics", namer.ForSpawn("quantum-basket-weaving", 2))
	})

	t.Run("tier follows the value", func(t *testing.T) {
		cases := map[int]string{
			2:    "basics",
			4:    "basics",
			8:    "intermediate",
			16:   "intermediate",
			32:   "advanced",
			64:   "advanced",
			128:  "expert",
			2048: "expert",
		}
		for value, tier := range cases {
			concept := namer.ForSpawn("python", value)
			assert.True(t, strings.HasSuffix(concept, ":"+tier), "value %d got %s", value, concept)
		}
	})
}

func TestForMerge(t *testing.T) {
	namer := NewConceptNamer(random.New(1))

	t.Run("same family members combine under the family name", func(t *testing.T) {
		got := namer.ForMerge("loops", "comprehensions", "python")
		assert.Equal(t, "control-flow:loops+comprehensions", got)
	})

	t.Run("family root promotes to advanced", func(t *testing.T) {
		got := namer.ForMerge("control-flow", "anything", "python")
		assert.Equal(t, "control-flow:advanced", got)
	})

	t.Run("cross family concepts synthesize", func(t *testing.T) {
		got := namer.ForMerge("loops", "algebra", "python")
		assert.Equal(t, "loops↔algebra", got)
	})

	t.Run("unknown domain always synthesizes", func(t *testing.T) {
		got := namer.ForMerge("a", "b", "no-such-domain")
		assert.Equal(t, "a↔b", got)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		first := namer.ForMerge("loops", "comprehensions", "python")
		for i := 0; i < 20; i++ {
			assert.Equal(t, first, namer.ForMerge("loops", "comprehensions", "python"))
		}
	})

	t.Run("argument order is preserved in the label", func(t *testing.T) {
		assert.Equal(t, "control-flow:comprehensions+loops", namer.ForMerge("comprehensions", "loops", "python"))
		assert.Equal(t, "b↔a", namer.ForMerge("b", "a", "no-such-domain"))
	})
}
