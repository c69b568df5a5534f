package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) && customErr.Meta != nil {
		meta := make(map[string]interface{}, len(customErr.Meta))
		for k, v := range customErr.Meta {
			meta[k] = v
		}
		return meta
	}

	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return GetCode(err) == CodeConfiguration
}

// IsInsufficientResources checks if an error is an insufficient resources error
func IsInsufficientResources(err error) bool {
	return GetCode(err) == CodeInsufficientResources
}

// IsNoSlotAvailable checks if an error is a no slot available error
func IsNoSlotAvailable(err error) bool {
	return GetCode(err) == CodeNoSlotAvailable
}

// IsNotEnoughSlots checks if an error is a not enough slots error
func IsNotEnoughSlots(err error) bool {
	return GetCode(err) == CodeNotEnoughSlots
}

// IsNoSelectionMade checks if an error is a no selection made error
func IsNoSelectionMade(err error) bool {
	return GetCode(err) == CodeNoSelectionMade
}

// IsSaveFailed checks if an error is an export write failure
func IsSaveFailed(err error) bool {
	return GetCode(err) == CodeSaveFailed
}

// IsRecoverable reports whether err is a rejected user action
func IsRecoverable(err error) bool {
	return err != nil && GetCode(err).Recoverable()
}
