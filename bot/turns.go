package bot

// GameEndDiscardSize is the discard pile size that ends the game.
const GameEndDiscardSize = 10

// MinTurnsRemaining estimates the turns every player is still guaranteed
// before the discard pile fills up.
func MinTurnsRemaining(discardLen, players int) int {
	if players <= 0 || discardLen >= GameEndDiscardSize {
		return 0
	}
	return (GameEndDiscardSize - discardLen) / players
}
