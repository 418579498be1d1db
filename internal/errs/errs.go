// Package errs defines the error shape returned to API clients.
//
// Every failure, whether raised by this codebase or by echo itself, is
// rendered through HTTPError so clients always receive the same JSON
// structure.
package errs
