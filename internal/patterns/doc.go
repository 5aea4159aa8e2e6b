// Package patterns groups small garage-themed design pattern demos that sit
// next to the store sample. Each subpackage is self-contained and driven by
// cmd/patterns.
package patterns
