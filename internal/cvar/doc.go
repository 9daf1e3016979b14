// Package cvar is the process-wide launch configuration registry. Components
// declare named, typed options with compiled-in defaults at package init;
// bootstrap resolves their final values from the command line and an optional
// HCL defaults file. Resolution order: command line, then file, then default.
package cvar
