// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and fixed-point Money amounts. Both are immutable and must
// be created through their constructor functions; zero values fail validation.
package kernel
