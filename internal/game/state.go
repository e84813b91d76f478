// Package game provides the main game loop and state management.
package game

// TurnState tracks whose move it is.
type TurnState int

const (
	// WaitingForPlayer is the idle state between turns.
	WaitingForPlayer TurnState = iota
	// PlayerTurn is active while the player's action resolves.
	PlayerTurn
	// MonsterTurn is active while monsters pick and take their steps.
	MonsterTurn
)

// String returns a human-readable state name.
func (s TurnState) String() string {
	switch s {
	case WaitingForPlayer:
		return "waiting_for_player"
	case PlayerTurn:
		return "player_turn"
	case MonsterTurn:
		return "monster_turn"
	default:
		return "unknown"
	}
}

// MoveResult describes what happened to a player move.
type MoveResult int

const (
	// Moved means the player stepped onto the target tile.
	Moved MoveResult = iota
	// Blocked means the target was a wall or off the map. No turn passes.
	Blocked
	// Bumped means a monster stood on the target. The turn is spent.
	Bumped
)

// String returns a human-readable result name.
func (r MoveResult) String() string {
	switch r {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case Bumped:
		return "bumped"
	default:
		return "unknown"
	}
}
