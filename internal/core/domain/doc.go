// Package domain defines the core business entities for whatif.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Category: A weighted life area a decision is judged against
//   - Decision: The choice taken, the road not taken, and their context
//   - Insight: One scored narrative statement about a category
//   - Timeline: The insights and aggregate sentiment of one path
//   - Balance: Normalised positions of both paths plus a comparison
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
