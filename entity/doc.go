// Package entity implements a small data-driven entity model for frame
// based 2D scenes.
//
// An Entity separates Props, its fixed configuration, from State, the
// attributes that evolve every tick. Behavior is composed from ordered
// lists of Updaters, which compute state patches, and Renderers, which
// issue drawing calls against a Surface. A driver calls Update(dt) on
// every entity and then Draw(surface), once per frame, from a single
// goroutine.
package entity
