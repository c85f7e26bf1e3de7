// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNilConfig is returned by NewApp without a configuration.
	ErrNilConfig = errors.New("config is nil")

	// ErrNilDatabase is returned by NewApp without a database.
	ErrNilDatabase = errors.New("database is nil")

	// ErrDatabaseConnection wraps the failure of the database step of Init.
	ErrDatabaseConnection = errors.New("error connecting to database")

	// ErrAlreadyInitialized is returned by every Init call after the first
	// successful one.
	ErrAlreadyInitialized = errors.New("app is already initialized")

	// ErrNotInitialized is returned by Listen until Init succeeded.
	ErrNotInitialized = errors.New("app is not initialized")

	// ErrAlreadyListening is returned by a second Listen call.
	ErrAlreadyListening = errors.New("app is already listening")

	// ErrAppClosed is returned by Init and Listen after Shutdown.
	ErrAppClosed = errors.New("app is shut down")
)
