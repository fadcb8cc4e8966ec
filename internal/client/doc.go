// Package client implements the command-line client of the contact keeper
// server.
//
// Each invocation runs exactly one command (register, login, contacts-search,
// ...) through an [adapter.ServerAdapter] and prints the result styled with
// lipgloss. The session token is not persisted: it is passed in with -token
// or CLIENT_TOKEN, and printed (or copied to the clipboard) on login.
package client
