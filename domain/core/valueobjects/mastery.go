package valueobjects

// MasteryLevel names the depth of knowledge a tile value represents.
type MasteryLevel string

const (
	MasteryExposure      MasteryLevel = "exposure"      // 2
	MasteryAwareness     MasteryLevel = "awareness"     // 4
	MasteryFamiliarity   MasteryLevel = "familiarity"   // 8
	MasteryComprehension MasteryLevel = "comprehension" // 16
	MasteryUnderstanding MasteryLevel = "understanding" // 32
	MasteryProficiency   MasteryLevel = "proficiency"   // 64
	MasteryCompetence    MasteryLevel = "competence"    // 128
	MasteryExpertise     MasteryLevel = "expertise"     // 256
	MasteryMastery       MasteryLevel = "mastery"       // 512
	MasteryExcellence    MasteryLevel = "excellence"    // 1024
	MasteryGenius        MasteryLevel = "genius"        // 2048
	MasteryTranscendence MasteryLevel = "transcendence" // 4096+
)

type masteryBand struct {
	value int
	level MasteryLevel
	color string
}

// Bands are ordered descending so MasteryForValue can take the first match.
// Colors follow the classic tile palette; the dark transcendence color doubles
// as the fallback for values beyond the table.
var masteryBands = []masteryBand{
	{4096, MasteryTranscendence, "#3c3a32"},
	{2048, MasteryGenius, "#edc22e"},
	{1024, MasteryExcellence, "#edc53f"},
	{512, MasteryMastery, "#edc850"},
	{256, MasteryExpertise, "#edcc61"},
	{128, MasteryCompetence, "#edcf72"},
	{64, MasteryProficiency, "#f65e3b"},
	{32, MasteryUnderstanding, "#f67c5f"},
	{16, MasteryComprehension, "#f59563"},
	{8, MasteryFamiliarity, "#f2b179"},
	{4, MasteryAwareness, "#ede0c8"},
	{2, MasteryExposure, "#eee4da"},
}

var masteryDescriptions = map[MasteryLevel]string{
	MasteryExposure:      "You've heard of this concept",
	MasteryAwareness:     "You can recognize it when you see it",
	MasteryFamiliarity:   "You understand the basics",
	MasteryComprehension: "You can explain it simply",
	MasteryUnderstanding: "You can apply it to problems",
	MasteryProficiency:   "You can solve complex problems",
	MasteryCompetence:    "You can teach this to others",
	MasteryExpertise:     "You have deep, nuanced knowledge",
	MasteryMastery:       "You can innovate and create",
	MasteryExcellence:    "You're a recognized expert",
	MasteryGenius:        "You're pushing the boundaries",
	MasteryTranscendence: "You're creating new knowledge",
}

// MasteryForValue maps a tile value to its mastery level.
func MasteryForValue(value int) MasteryLevel {
	for _, band := range masteryBands {
		if value >= band.value {
			return band.level
		}
	}
	return MasteryExposure
}

// ColorForValue maps a tile value to its display color.
func ColorForValue(value int) string {
	for _, band := range masteryBands {
		if value >= band.value {
			return band.color
		}
	}
	return masteryBands[len(masteryBands)-1].color
}

// Description returns the human-readable meaning of the level.
func (m MasteryLevel) Description() string {
	return masteryDescriptions[m]
}

// String returns the string representation
func (m MasteryLevel) String() string {
	return string(m)
}
