package main

// Exit codes.
const (
	ExitSuccess     = 0
	ExitError       = 1   // Bad input, missing credentials, API or transport failure
	ExitInterrupted = 130 // Download batch aborted by SIGINT/SIGTERM
)
