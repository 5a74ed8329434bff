package data

import (
	"context"
	"database/sql"
	"errors"
)

var ErrorPlayerNotFound = errors.New("player not found")

type PlayerId uint64

type Player struct {
	Id       PlayerId `json:"id"`
	Username string   `json:"username"`
	FullName string   `json:"full_name"`
}

// Transactional is the persistence contract of the game engine. One game
// record per session, mutated only inside a transaction.
type Transactional interface {
	BeginTransaction(ctx context.Context) (*sql.Tx, error)
	FinalizeTransaction(tx *sql.Tx, err error) error
	InsertGame(ctx context.Context, tx *sql.Tx, game Game) (Game, error)
	InsertGamePlayer(ctx context.Context, tx *sql.Tx, game Game, player Player) (Game, error)
	GetGameBySession(ctx context.Context, tx *sql.Tx, session string) (Game, error)
	GetPlayersBySession(ctx context.Context, tx *sql.Tx, session string) ([]Player, error)
	GetWordHistoriesBySession(ctx context.Context, tx *sql.Tx, session string) ([]WordHistory, error)
	GetGamesByPlayerId(ctx context.Context, playerId PlayerId, ended bool) ([]Game, error)
	GetPlayerById(ctx context.Context, playerId PlayerId) (Player, error)
	LogPlayedWord(ctx context.Context, tx *sql.Tx, session string, playerId PlayerId, word string) error
	ClaimLetters(ctx context.Context, tx *sql.Tx, session string, letterIds []LetterId, gamer PlayerId) error
	UpdateGame(ctx context.Context, tx *sql.Tx, game Game) error
}

// Dictionary is the cache sitting in front of a dictionary oracle.
type Dictionary interface {
	Get(lang, key string) (bool, bool)
	Set(lang, key string, value bool)
}

// Notifier delivers fire-and-forget events to whoever is watching a match.
type Notifier interface {
	Publish(event string, payload interface{}, session string, gamer PlayerId) error
}
