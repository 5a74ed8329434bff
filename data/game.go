package data

import "errors"

// MaxGamers is the number of seats in a match.
const MaxGamers = 2

var (
	ErrorGameNotFound  = errors.New("game not found")
	ErrorUnknownLetter = errors.New("no such letter")
)

// WordHistory is the ordered record of words one player has claimed.
type WordHistory struct {
	Gamer PlayerId `json:"gamer"`
	Words []string `json:"words"`
}

// Game is the authoritative snapshot of one match, addressed by session.
type Game struct {
	Session       string        `json:"session"`
	Players       []PlayerId    `json:"players"`
	Letters       []Letter      `json:"letters"`
	Histories     []WordHistory `json:"histories"`
	CurrentPlayer PlayerId      `json:"current_player"`
	Ended         bool          `json:"ended"`
	Winner        PlayerId      `json:"winner,omitempty"`
}

// TurnResult reports what an accepted turn did.
type TurnResult struct {
	LetterIds []LetterId `json:"letter_ids"`
	Word      string     `json:"word"`
	Ended     bool       `json:"ended"`
}

func (g *Game) IsCurrentPlayer(playerId PlayerId) bool {
	return g.CurrentPlayer == playerId
}

// ChangeCurrentPlayer hands the turn to the other seated player. With a
// single seat filled there is no other player and the pointer stays put.
func (g *Game) ChangeCurrentPlayer() {
	for _, gamer := range g.Players {
		if g.IsCurrentPlayer(gamer) {
			continue
		}
		g.CurrentPlayer = gamer
		break
	}
}

func (g *Game) HasPlayer(playerId PlayerId) bool {
	for _, gamer := range g.Players {
		if gamer == playerId {
			return true
		}
	}
	return false
}

func (g *Game) AllLettersClaimed() bool {
	for _, letter := range g.Letters {
		if !letter.Claimed() {
			return false
		}
	}
	return len(g.Letters) > 0
}

// LetterById resolves a tile by its stable 1-based id. The returned pointer
// aliases the game's own slice so the caller can assign ownership.
func (g *Game) LetterById(letterId LetterId) (*Letter, error) {
	for i := range g.Letters {
		if g.Letters[i].Id == letterId {
			return &g.Letters[i], nil
		}
	}
	return nil, ErrorUnknownLetter
}

func (g *Game) WordsOf(playerId PlayerId) []string {
	for _, history := range g.Histories {
		if history.Gamer == playerId {
			return history.Words
		}
	}
	return []string{}
}

// HasPlayedWord reports whether any player already claimed the word.
// Uniqueness is match wide, not per player.
func (g *Game) HasPlayedWord(word string) bool {
	for _, history := range g.Histories {
		for _, played := range history.Words {
			if played == word {
				return true
			}
		}
	}
	return false
}

// LogWord appends the word to the acting player's history, seating a fresh
// history record on their first word.
func (g *Game) LogWord(playerId PlayerId, word string) {
	for i := range g.Histories {
		if g.Histories[i].Gamer == playerId {
			g.Histories[i].Words = append(g.Histories[i].Words, word)
			return
		}
	}
	g.Histories = append(g.Histories, WordHistory{
		Gamer: playerId,
		Words: []string{word},
	})
}

// Score counts claimed tiles per seated player. Unclaimed tiles count for
// no one.
func (g *Game) Score() map[PlayerId]int {
	score := make(map[PlayerId]int, len(g.Players))
	for _, gamer := range g.Players {
		score[gamer] = 0
	}
	for _, letter := range g.Letters {
		if !letter.Claimed() {
			continue
		}
		score[letter.Gamer]++
	}
	return score
}

// ResolveWinner picks the player with the most claimed tiles. Ties go to
// the lowest player id, so the outcome never depends on map iteration.
func (g *Game) ResolveWinner() PlayerId {
	score := g.Score()
	var winner PlayerId
	best := -1
	for _, gamer := range g.Players {
		if score[gamer] > best || (score[gamer] == best && gamer < winner) {
			winner = gamer
			best = score[gamer]
		}
	}
	return winner
}
