// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The timeline pipeline runs generate, augment, aggregate and map in
// that order. Every stage is synchronous and in-memory; randomness is
// supplied by a driven.RandomFactory so runs can be replayed.
package services
