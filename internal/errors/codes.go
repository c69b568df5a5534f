package errors

// Code represents an error code
type Code string

// Transport-level codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
)

// Generation-rule codes. Everything except CodeConfiguration is recoverable:
// the action is rejected and the character is left untouched.
const (
	// CodeConfiguration marks malformed static data such as a weighted
	// table whose thresholds do not cover every roll.
	CodeConfiguration Code = "CONFIGURATION"

	// CodeInsufficientResources is returned when a purchase would drop the
	// Resources rank below zero.
	CodeInsufficientResources Code = "INSUFFICIENT_RESOURCES"

	// CodeNoSlotAvailable is returned when a purchase would exceed the
	// maximum slot budget.
	CodeNoSlotAvailable Code = "NO_SLOT_AVAILABLE"

	// CodeNotEnoughSlots is returned when an item costs more slots than
	// remain in the budget.
	CodeNotEnoughSlots Code = "NOT_ENOUGH_SLOTS"

	// CodeNoSelectionMade is returned when an action needs a prior choice.
	CodeNoSelectionMade Code = "NO_SELECTION_MADE"

	// CodeSaveFailed is returned when the export could not be written.
	CodeSaveFailed Code = "SAVE_FAILED"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether the code describes a rejected user action
// rather than a programming or infrastructure fault.
func (c Code) Recoverable() bool {
	switch c {
	case CodeInsufficientResources, CodeNoSlotAvailable, CodeNotEnoughSlots,
		CodeNoSelectionMade, CodeSaveFailed, CodeFailedPrecondition, CodeInvalidArgument:
		return true
	default:
		return false
	}
}
