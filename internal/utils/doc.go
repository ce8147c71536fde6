// Package utils provides input validation for the HTTP API.
//
// Validation:
//   - String length and format validation
//   - ID, tool ID, and category validation
//   - Discovery query validation
//   - Params nesting depth validation
//
// Features:
//   - Consistent error messages
//   - Configurable limits
//   - Type-safe validation functions
//
// Example Usage:
//
//	if err := utils.ValidateToolID("calculus.multiply", "tool_id", true); err != nil {
//		return err
//	}
package utils
