// Package service wires the MCP protocol transport to domain tool handlers.
//
// The server runs over stdio and delegates every tool call to the domain
// package.
package service
