// Package app wires CLI dependencies.
//
// It resolves configuration from a YAML file and environment variables,
// and builds the token store and client options from Config, exposing
// them via the Wire struct for commands to use.
package app
