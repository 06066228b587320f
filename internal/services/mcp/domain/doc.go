// Package domain maps MCP tool calls onto listings and investment operations.
//
// Each tool pairs a schema constructor (XxxTool) with a handler constructor
// (XxxHandler) so the service layer can register them without knowing the
// inputs.
package domain
