// Package host is the bootstrap sequencer: a strictly linear, run-once chain
// that prepares the OS execution environment - argument marshalling, console
// negotiation, subsystem and logging initialization, the CPU capability gate,
// timer negotiation - and then hands a normalized argument vector to the
// application's entry point exactly once. The application either receives a
// fully initialized environment or the process terminates before its code
// runs.
package host
