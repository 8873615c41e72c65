package game

// Payout multipliers applied to the stake at settlement
const (
	PayoutLoss = 0
	PayoutPush = 1
	PayoutWin  = 2
)

// MaxRebetMultiplier is the largest multiple of the last stake a rebet allows
const MaxRebetMultiplier = 3

// Ledger tracks the player's bank and wager. Chips move between bank and
// stake as a unit, so Bank()+CurrentBet() only changes at settlement.
//
// The ledger only checks funds. Whether betting is open at all is decided
// by the Engine from the round state.
type Ledger struct {
	bank       int
	currentBet int
	lastBet    int
}

// NewLedger creates a ledger holding bank chips and no stake
func NewLedger(bank int) *Ledger {
	if bank < 0 {
		bank = 0
	}
	return &Ledger{bank: bank}
}

// Bank returns the chips not currently staked
func (l *Ledger) Bank() int { return l.bank }

// CurrentBet returns the chips staked on the next or current round
func (l *Ledger) CurrentBet() int { return l.currentBet }

// LastBet returns the most recently committed or settled stake
func (l *Ledger) LastBet() int { return l.lastBet }

// Total returns bank plus stake
func (l *Ledger) Total() int { return l.bank + l.currentBet }

// CanPlace reports whether a chip of amount can be added to the stake
func (l *Ledger) CanPlace(amount int) bool {
	return amount > 0 && amount <= l.bank
}

// PlaceChip moves amount from the bank onto the stake
func (l *Ledger) PlaceChip(amount int) bool {
	if !l.CanPlace(amount) {
		return false
	}
	l.bank -= amount
	l.currentBet += amount
	return true
}

// ClearBet returns the whole stake to the bank
func (l *Ledger) ClearBet() bool {
	if l.currentBet == 0 {
		return false
	}
	l.bank += l.currentBet
	l.currentBet = 0
	return true
}

// RebetAmount returns the stake a rebet with multiplier would place
func (l *Ledger) RebetAmount(multiplier int) int {
	return l.lastBet * multiplier
}

// CanRebet reports whether Rebet(multiplier) would succeed. Chips already
// on the stake count towards the available funds because a rebet replaces
// the stake rather than adding to it.
func (l *Ledger) CanRebet(multiplier int) bool {
	if multiplier < 1 || multiplier > MaxRebetMultiplier || l.lastBet <= 0 {
		return false
	}
	return l.RebetAmount(multiplier) <= l.bank+l.currentBet
}

// Rebet sets the stake to lastBet*multiplier, returning any chips already
// staked to the bank first.
func (l *Ledger) Rebet(multiplier int) bool {
	if !l.CanRebet(multiplier) {
		return false
	}
	amount := l.RebetAmount(multiplier)
	l.bank += l.currentBet
	l.bank -= amount
	l.currentBet = amount
	return true
}

// Commit records the stake as the last bet when a round is dealt
func (l *Ledger) Commit() {
	l.lastBet = l.currentBet
}

// Settle credits the bank with stake*payout, records the stake as the last
// bet and clears it. It returns the amount credited.
func (l *Ledger) Settle(payout int) int {
	credit := l.currentBet * payout
	l.bank += credit
	l.lastBet = l.currentBet
	l.currentBet = 0
	return credit
}
