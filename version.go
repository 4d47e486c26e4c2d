package main

var (
	// Version is the release version of the next-version CLI itself.
	Version = "1.0.0"
)
