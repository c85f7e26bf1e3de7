// Package server bootstraps and runs the HTTP application.
//
// An [App] is built once per process from an ordered controller list, the
// structured configuration and a database. Its lifecycle is linear:
// NewApp wires the router, Init connects the database and must succeed
// before Listen binds the socket. Run adds signal handling and graceful
// shutdown on top of Listen.
package server
