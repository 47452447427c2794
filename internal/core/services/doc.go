// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The consolidation pipeline itself is pure Go over immutable values;
// only the batch runner and study service touch driven ports.
package services
