// meta/meta.go
package meta

// PLAYOUTS defines the default number of playouts an agent runs per move.
const PLAYOUTS = 150

// TEMPERATURE defines the default sampling temperature of training agents.
const TEMPERATURE = 1.0

// MAX_TURNS defines the turn limit of a local game.
const MAX_TURNS = 300
