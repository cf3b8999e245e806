package types

import "errors"

// Sentinel errors for whereclause operations.
var (
	// ErrUnknownOperator indicates a comparator or logical operator code
	// outside the closed registry set.
	ErrUnknownOperator = errors.New("unknown operator code")

	// ErrUnknownTarget indicates an unsupported code generation target.
	ErrUnknownTarget = errors.New("unknown generation target")

	// ErrConditionRequired indicates a compound or empty node was passed
	// where a single condition is required.
	ErrConditionRequired = errors.New("a single condition is required")

	// ErrEmptyExpression indicates the empty sentinel node was passed to an
	// operation that requires a populated expression.
	ErrEmptyExpression = errors.New("expression is empty")

	// ErrTemplateNotFound indicates a template id with no stored record.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidTemplate indicates a template whose expression fails
	// validation; such templates are not persisted.
	ErrInvalidTemplate = errors.New("template expression failed validation")
)
