package data

type LetterId uint16

// Letter is one claimable tile of a match's pool. Gamer stays zero until a
// player claims it, and never changes afterwards.
type Letter struct {
	Id     LetterId `json:"id"`
	Letter byte     `json:"letter"`
	Gamer  PlayerId `json:"gamer,omitempty"`
}

func (l Letter) Claimed() bool {
	return l.Gamer != 0
}
