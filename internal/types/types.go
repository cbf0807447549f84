// internal/types/types.go
package types

// EntityID is a stable handle into the ECS registries. Zero is never issued,
// so it doubles as "no entity".
type EntityID uint64
