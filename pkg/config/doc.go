// Package config loads petrovich settings. Values are layered, later sources
// winning: built-in defaults, the user config file, PETROVICH_* environment
// variables and finally explicit overrides (command-line flags).
package config
