package game

// DealerStandTotal is the total at which the dealer stops drawing. Soft
// totals count, so the dealer stands on A-6.
const DealerStandTotal = 17

// DealerShouldDraw reports whether the dealer takes another card
func DealerShouldDraw(dealer Hand) bool {
	return dealer.Score() < DealerStandTotal
}

// Outcome is the result of a settled round
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	OutcomePush
	OutcomeBust
)

func (o Outcome) String() string {
	return [...]string{"none", "win", "loss", "push", "bust"}[o]
}

// Payout returns the multiplier applied to the stake
func (o Outcome) Payout() int {
	switch o {
	case OutcomeWin:
		return PayoutWin
	case OutcomePush:
		return PayoutPush
	default:
		return PayoutLoss
	}
}

// Message returns the result line shown to the player
func (o Outcome) Message() string {
	switch o {
	case OutcomeWin:
		return "You win!"
	case OutcomeLoss:
		return "Dealer wins."
	case OutcomePush:
		return "Push."
	case OutcomeBust:
		return "Player busts. Dealer wins."
	default:
		return ""
	}
}

// ParseOutcome is the inverse of Outcome.String
func ParseOutcome(s string) Outcome {
	switch s {
	case "win":
		return OutcomeWin
	case "loss":
		return OutcomeLoss
	case "push":
		return OutcomePush
	case "bust":
		return OutcomeBust
	default:
		return OutcomeNone
	}
}

// Resolve compares final totals. A dealer bust or a higher player total
// wins, a lower player total loses, equal totals push.
func Resolve(playerScore, dealerScore int) Outcome {
	switch {
	case playerScore > BustLimit:
		return OutcomeBust
	case dealerScore > BustLimit || playerScore > dealerScore:
		return OutcomeWin
	case playerScore < dealerScore:
		return OutcomeLoss
	default:
		return OutcomePush
	}
}
