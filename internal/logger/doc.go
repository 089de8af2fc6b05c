// Package logger wraps zap for the wordgroups command.
//
// Library packages take a *zap.Logger directly (see Desugar); the command
// talks to the sugared key-value methods below.
package logger
