// Package errors provides the structured error type shared by the rules
// engine, the session orchestrator and the gRPC handlers.
//
// Every error carries a Code. Generation-rule codes describe rejected user
// actions (a purchase the character cannot afford, an item that does not fit
// the slot budget, an action that needs a prior choice) and are recoverable:
// the engine validates before it mutates, so a rejected action leaves the
// character exactly as it was. CodeConfiguration marks broken static data
// and is not recoverable.
//
// # Basic Usage
//
//	err := errors.InsufficientResources("resources rank cannot pay for a power")
//	err := errors.NotFoundf("session %s not found", id)
//
// Adding metadata:
//
//	err := errors.NoSlotAvailable("power budget is full").
//	    WithMeta("max", budget.Max)
//
// Checking:
//
//	if errors.IsNotEnoughSlots(err) {
//	    // drop the class and move on
//	}
//
// # gRPC
//
// ToGRPCError maps codes onto gRPC status codes and attaches an
// errdetails.ErrorInfo carrying the original code; FromGRPCError reverses
// it on the client side.
package errors
