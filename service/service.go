package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lpgame/letterpool/data"
	"github.com/lpgame/letterpool/dictionary"
)

var (
	ErrorLetterAlreadyClaimed = errors.New("letter already claimed")
	ErrorNotAWord             = errors.New("not a word")
	ErrorPlayerIsEnough       = errors.New("player is enough")
	ErrorGameInProgress       = errors.New("no winner, game in progress")
	ErrorWordAlreadyUsed      = errors.New("word already used")
)

const language = "en-us"

// CollaboratorError marks a failure of an external collaborator (store,
// dictionary, corpus) so callers never mistake it for a rejected turn.
type CollaboratorError struct {
	Op  string
	Err error
}

func (e CollaboratorError) Error() string {
	return fmt.Sprintf("%v: %v", e.Op, e.Err)
}

func (e CollaboratorError) Unwrap() error {
	return e.Err
}

type Service interface {
	NewMatch(ctx context.Context, firstPlayerId data.PlayerId) (data.Game, error)
	JoinMatch(ctx context.Context, session string, playerId data.PlayerId) (data.Game, error)
	TakeTurn(ctx context.Context, session string, letterIds []data.LetterId, playerId data.PlayerId) (data.TurnResult, error)
	GetGame(ctx context.Context, session string) (data.Game, error)
	GetGames(ctx context.Context, playerId data.PlayerId, ended bool) ([]data.Game, error)
	Winner(ctx context.Context, session string) (data.PlayerId, error)
}

type application struct {
	transactional data.Transactional
	dictionaries  map[string]dictionary.Dictionary
	corpus        dictionary.Corpus
	notifier      data.Notifier
	logger        zerolog.Logger

	mutex      sync.Mutex
	sessions   map[string]*sync.Mutex
	corpusSize uint32
}

func NewService(
	transactional data.Transactional,
	dictionaries map[string]dictionary.Dictionary,
	corpus dictionary.Corpus,
	notifier data.Notifier,
	logger zerolog.Logger,
) Service {
	return &application{
		transactional: transactional,
		dictionaries:  dictionaries,
		corpus:        corpus,
		notifier:      notifier,
		logger:        logger,
		sessions:      make(map[string]*sync.Mutex),
	}
}

// lockSession serializes mutations per match. At most one turn is in
// flight for a session; matches never contend with each other.
func (a *application) lockSession(session string) func() {
	a.mutex.Lock()
	lock, ok := a.sessions[session]
	if !ok {
		lock = &sync.Mutex{}
		a.sessions[session] = lock
	}
	a.mutex.Unlock()

	lock.Lock()
	return lock.Unlock
}

// notify publishes best effort, decoupled from the committed mutation. A
// slow or broken sink never fails a turn.
func (a *application) notify(event string, payload interface{}, session string, gamer data.PlayerId) {
	go func() {
		err := a.notifier.Publish(event, payload, session, gamer)
		if err != nil {
			a.logger.Warn().
				Err(err).
				Str("session", session).
				Str("event", event).
				Msg("notification dropped")
		}
	}()
}

// finalize commits or rolls back, keeping validation sentinels intact and
// flagging commit and rollback failures as collaborator errors.
func (a *application) finalize(tx *sql.Tx, err error) error {
	final := a.transactional.FinalizeTransaction(tx, err)
	if final != nil && final != err {
		return CollaboratorError{Op: "store", Err: final}
	}
	return final
}

// storeError passes through the not-found sentinels and wraps anything
// else as a store failure.
func storeError(err error) error {
	if err == data.ErrorGameNotFound || err == data.ErrorPlayerNotFound {
		return err
	}
	return CollaboratorError{Op: "store", Err: err}
}
