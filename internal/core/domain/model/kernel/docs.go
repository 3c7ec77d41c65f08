// Package kernel holds the value objects every other domain package builds on:
// UUID identifiers and Money amounts. Both are immutable and safe to share between
// goroutines.
package kernel
