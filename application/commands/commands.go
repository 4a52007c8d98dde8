// Package commands holds the request DTOs for engine mutations. Each command
// validates itself before the engine touches any grid state, so a bad request
// never mutates anything.
package commands

import (
	"lucidia-engine/pkg/utils"

	pkgerrors "lucidia-engine/pkg/errors"
)

// GetOrCreateGridCommand requests the grid for a (user, domain) pair,
// creating it with two starting tiles when absent. Size 0 means the
// configured default.
type GetOrCreateGridCommand struct {
	UserID string `validate:"required"`
	Domain string `validate:"required"`
	Size   int    `validate:"omitempty,min=2,max=16"`
}

// Validate checks the command fields
func (c GetOrCreateGridCommand) Validate() error {
	return wrapValidation(utils.ValidateStruct(c))
}

// MoveCommand requests a directional move on a grid
type MoveCommand struct {
	UserID    string `validate:"required"`
	Domain    string `validate:"required"`
	Direction string `validate:"required,oneof=up down left right"`
}

// Validate checks the command fields
func (c MoveCommand) Validate() error {
	return wrapValidation(utils.ValidateStruct(c))
}

// LearnCommand adds a new piece of knowledge to a grid. Value 0 means the
// base tile value; Context and Source are optional metadata carried on the
// KnowledgeLearned event.
type LearnCommand struct {
	UserID  string `validate:"required"`
	Domain  string `validate:"required"`
	Concept string `validate:"required"`
	Value   int    `validate:"omitempty,min=2"`
	Context string
	Source  string
}

// Validate checks the command fields
func (c LearnCommand) Validate() error {
	return wrapValidation(utils.ValidateStruct(c))
}

// ResetGridCommand discards a grid and recreates it fresh
type ResetGridCommand struct {
	UserID string `validate:"required"`
	Domain string `validate:"required"`
}

// Validate checks the command fields
func (c ResetGridCommand) Validate() error {
	return wrapValidation(utils.ValidateStruct(c))
}

func wrapValidation(err error) error {
	if err == nil {
		return nil
	}
	return pkgerrors.NewValidationError(err.Error())
}
