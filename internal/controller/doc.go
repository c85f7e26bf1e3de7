// Package controller contains the built-in controllers that every service
// started from this bootstrap exposes: a database-backed health check and a
// build version report. Business controllers live elsewhere and are passed
// to the server next to these.
package controller
