package events

import (
	"time"

	"github.com/google/uuid"

	"lucidia-engine/domain/core/valueobjects"
)

// Grid Events

// GridCreated is raised when a fresh grid is created for a (user, domain) pair
type GridCreated struct {
	BaseEvent
	UserID string `json:"user_id"`
	Domain string `json:"domain"`
	Size   int    `json:"size"`
}

// NewGridCreated creates a GridCreated event
func NewGridCreated(gridID, userID, domain string, size int, timestamp time.Time) GridCreated {
	return GridCreated{
		BaseEvent: BaseEvent{
			AggregateID: gridID,
			EventType:   "grid.created",
			Timestamp:   timestamp,
			Version:     1,
		},
		UserID: userID,
		Domain: domain,
		Size:   size,
	}
}

// GridWon is raised once, when the first tile on the grid reaches the win value
type GridWon struct {
	BaseEvent
	UserID      string `json:"user_id"`
	Domain      string `json:"domain"`
	HighestTile int    `json:"highest_tile"`
}

// NewGridWon creates a GridWon event
func NewGridWon(gridID, userID, domain string, highestTile int, timestamp time.Time) GridWon {
	return GridWon{
		BaseEvent: BaseEvent{
			AggregateID: gridID,
			EventType:   "grid.won",
			Timestamp:   timestamp,
			Version:     1,
		},
		UserID:      userID,
		Domain:      domain,
		HighestTile: highestTile,
	}
}

// GridEnded is raised once, when no legal move remains on the grid
type GridEnded struct {
	BaseEvent
	UserID     string `json:"user_id"`
	Domain     string `json:"domain"`
	FinalScore int    `json:"final_score"`
	MoveCount  int    `json:"move_count"`
}

// NewGridEnded creates a GridEnded event
func NewGridEnded(gridID, userID, domain string, finalScore, moveCount int, timestamp time.Time) GridEnded {
	return GridEnded{
		BaseEvent: BaseEvent{
			AggregateID: gridID,
			EventType:   "grid.ended",
			Timestamp:   timestamp,
			Version:     1,
		},
		UserID:     userID,
		Domain:     domain,
		FinalScore: finalScore,
		MoveCount:  moveCount,
	}
}

// Tile Events

// TileSpawned is raised when a tile is placed on an empty cell
type TileSpawned struct {
	BaseEvent
	TileID   valueobjects.TileID   `json:"tile_id"`
	UserID   string                `json:"user_id"`
	Domain   string                `json:"domain"`
	Concept  string                `json:"concept"`
	Value    int                   `json:"value"`
	Position valueobjects.Position `json:"position"`
}

// NewTileSpawned creates a TileSpawned event
func NewTileSpawned(gridID string, tileID valueobjects.TileID, userID, domain, concept string, value int, position valueobjects.Position, timestamp time.Time) TileSpawned {
	return TileSpawned{
		BaseEvent: BaseEvent{
			AggregateID: gridID,
			EventType:   "tile.spawned",
			Timestamp:   timestamp,
			Version:     1,
		},
		TileID:   tileID,
		UserID:   userID,
		Domain:   domain,
		Concept:  concept,
		Value:    value,
		Position: position,
	}
}

// TilesMerged is the immutable record of one merge occurring during one move.
// Both source values and concepts are the pre-merge ones; the survivor's value
// is captured before it is doubled in place.
type TilesMerged struct {
	BaseEvent
	ID             string                `json:"id"`
	UserID         string                `json:"user_id"`
	Domain         string                `json:"domain"`
	FirstConcept   string                `json:"first_concept"`
	SecondConcept  string                `json:"second_concept"`
	FirstValue     int                   `json:"first_value"`
	SecondValue    int                   `json:"second_value"`
	ResultConcept  string                `json:"result_concept"`
	ResultValue    int                   `json:"result_value"`
	ResultPosition valueobjects.Position `json:"result_position"`

	// Insight is attached by an external generator; it is presentation data
	// and never required for correctness.
	Insight string `json:"insight,omitempty"`
}

// NewTilesMerged creates a TilesMerged event
func NewTilesMerged(gridID, userID, domain string, firstConcept, secondConcept string, sourceValue int, resultConcept string, resultValue int, position valueobjects.Position, timestamp time.Time) TilesMerged {
	return TilesMerged{
		BaseEvent: BaseEvent{
			AggregateID: gridID,
			EventType:   "tiles.merged",
			Timestamp:   timestamp,
			Version:     1,
		},
		ID:             uuid.New().String(),
		UserID:         userID,
		Domain:         domain,
		FirstConcept:   firstConcept,
		SecondConcept:  secondConcept,
		FirstValue:     sourceValue,
		SecondValue:    sourceValue,
		ResultConcept:  resultConcept,
		ResultValue:    resultValue,
		ResultPosition: position,
	}
}

// Learning Events

// KnowledgeLearned is raised when new knowledge enters a grid through a learn
// call rather than a random spawn
type KnowledgeLearned struct {
	BaseEvent
	TileID  valueobjects.TileID `json:"tile_id"`
	UserID  string              `json:"user_id"`
	Domain  string              `json:"domain"`
	Concept string              `json:"concept"`
	Value   int                 `json:"value"`
	Context string              `json:"context,omitempty"`
	Source  string              `json:"source,omitempty"`
}

// NewKnowledgeLearned creates a KnowledgeLearned event
func NewKnowledgeLearned(gridID string, tileID valueobjects.TileID, userID, domain, concept string, value int, learnContext, source string, timestamp time.Time) KnowledgeLearned {
	return KnowledgeLearned{
		BaseEvent: BaseEvent{
			AggregateID: gridID,
			EventType:   "knowledge.learned",
			Timestamp:   timestamp,
			Version:     1,
		},
		TileID:  tileID,
		UserID:  userID,
		Domain:  domain,
		Concept: concept,
		Value:   value,
		Context: learnContext,
		Source:  source,
	}
}
