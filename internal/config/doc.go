// Package config resolves the settings of the wordgroups command.
//
// Precedence, lowest first: Default, the YAML config file, the environment
// (a .env file in the working directory is loaded first; WORDGROUPS_* keys),
// then command-line flags applied by the caller. Validate runs last.
package config
