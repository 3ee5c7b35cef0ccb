// Package core defines the shared leaf types of the conversation system:
// the per-conversation AccountContext, the append-only history item variants,
// the oracle action variants, the rendering event variants, the error
// taxonomy and the ToolContext handed to tool implementations.
//
// Item, Action and Event are closed tagged-variant sets (unexported marker
// methods) so renderers and engines can switch exhaustively over them.
package core
