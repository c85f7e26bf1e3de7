// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the HTTP
// error layer and the built-in controllers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// throughout the API.
package app

const (
	// MsgSomethingWentWrong is returned for every failure without a known
	// status, so that internal details never reach the client.
	MsgSomethingWentWrong = "something went wrong"

	// MsgDatabaseUnavailable is returned when the database is not connected
	// or does not answer a ping.
	MsgDatabaseUnavailable = "database is not available"

	// MsgRequestTimedOut is returned when a request outlives its deadline.
	MsgRequestTimedOut = "request timed out"

	// MsgValidationFailed is returned when a decoded request body violates
	// its validation rules.
	MsgValidationFailed = "request validation failed"

	// MsgStatusOK is the status reported by a passing health check.
	MsgStatusOK = "ok"
)
