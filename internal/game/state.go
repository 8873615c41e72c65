package game

// RoundState is where the engine is in the round lifecycle
type RoundState int

const (
	// Idle means no hand is in progress and the stake may be changed
	Idle RoundState = iota
	// PlayerTurn means both hands are dealt and the player is acting
	PlayerTurn
	// DealerTurn means the hole card is revealed and the dealer is drawing
	DealerTurn
	// Settled means the outcome has been paid; the engine returns to Idle
	// before the command that settled the round returns
	Settled
)

func (s RoundState) String() string {
	return [...]string{"idle", "player_turn", "dealer_turn", "settled"}[s]
}

// Command identifies one of the engine's player-facing commands
type Command int

const (
	CommandPlaceChip Command = iota
	CommandClearBet
	CommandRebet
	CommandDeal
	CommandHit
	CommandStand
)

func (c Command) String() string {
	return [...]string{"place_chip", "clear_bet", "rebet", "deal", "hit", "stand"}[c]
}
