// Package types provides shared data structures for the dualgrad service.
//
// Core Types:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//   - ExecuteRequest: Service tool execution request
package types
