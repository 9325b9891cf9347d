// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Parsing is cached per struct type: the first Load of a type parses the
// environment, later Loads return the same value. This keeps configuration
// stable across the process even when several components load overlapping
// config types.
package config
