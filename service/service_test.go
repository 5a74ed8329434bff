package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/lpgame/letterpool/data"
	"github.com/lpgame/letterpool/dictionary"
	"github.com/lpgame/letterpool/service"
)

var (
	session = "5e0bca83"

	players = []data.Player{
		{Id: 7, Username: "sarjono", FullName: "Sarjono Aji"},
		{Id: 13, Username: "mukti", FullName: "Mukti Wibowo"},
	}

	playerId = players[0].Id

	unexpectedError = errors.New("unexpected error")

	ctx = context.TODO()

	tx = &sql.Tx{}
)

func gameFixture() data.Game {
	return data.Game{
		Session: session,
		Letters: []data.Letter{
			{Id: 1, Letter: 'c'},
			{Id: 2, Letter: 'a'},
			{Id: 3, Letter: 't'},
			{Id: 4, Letter: 'd'},
			{Id: 5, Letter: 'o'},
			{Id: 6, Letter: 'g'},
		},
		CurrentPlayer: players[0].Id,
	}
}

type Dictionary struct {
	mock.Mock
}

func (d *Dictionary) LemmaIsValid(lemma string) (result bool, err error) {
	args := d.Called(lemma)
	return args.Bool(0), args.Error(1)
}

type Corpus struct {
	mock.Mock
}

func (c *Corpus) CountWords(ctx context.Context) (uint32, error) {
	args := c.Called(ctx)
	return args.Get(0).(uint32), args.Error(1)
}

func (c *Corpus) GetWordById(ctx context.Context, wordId uint32) (string, error) {
	args := c.Called(ctx, wordId)
	return args.String(0), args.Error(1)
}

type publishedEvent struct {
	event   string
	payload map[string]interface{}
	session string
	gamer   data.PlayerId
}

// Notifier records published events on a channel so tests can wait out the
// fire-and-forget goroutine.
type Notifier struct {
	events chan publishedEvent
}

func newNotifier() *Notifier {
	return &Notifier{events: make(chan publishedEvent, 4)}
}

func (n *Notifier) Publish(event string, payload interface{}, session string, gamer data.PlayerId) error {
	body, _ := payload.(map[string]interface{})
	n.events <- publishedEvent{event, body, session, gamer}
	return nil
}

func (n *Notifier) expectEvent(t *testing.T) publishedEvent {
	t.Helper()
	select {
	case event := <-n.events:
		return event
	case <-time.After(time.Second):
		t.Fatal("expected an event, got none")
		return publishedEvent{}
	}
}

func (n *Notifier) expectNoEvent(t *testing.T) {
	t.Helper()
	select {
	case event := <-n.events:
		t.Fatalf("unexpected event %v", event.event)
	case <-time.After(20 * time.Millisecond):
	}
}

type Transactional struct {
	mock.Mock
}

func (t *Transactional) BeginTransaction(ctx context.Context) (*sql.Tx, error) {
	args := t.Called(ctx)
	return args.Get(0).(*sql.Tx), args.Error(1)
}

func (t *Transactional) FinalizeTransaction(tx *sql.Tx, err error) error {
	expectedError := t.Called(tx, err).Error(0)
	if expectedError != nil {
		return expectedError
	}
	return err
}

func (t *Transactional) InsertGame(ctx context.Context, tx *sql.Tx, game data.Game) (data.Game, error) {
	err := t.Called(ctx, tx, game).Error(0)
	if err != nil {
		return data.Game{}, err
	}
	return game, nil
}

func (t *Transactional) InsertGamePlayer(ctx context.Context, tx *sql.Tx, game data.Game, player data.Player) (data.Game, error) {
	err := t.Called(ctx, tx, game, player).Error(0)
	if err != nil {
		return data.Game{}, err
	}
	game.Players = append(game.Players, player.Id)
	return game, nil
}

func (t *Transactional) GetGameBySession(ctx context.Context, tx *sql.Tx, session string) (data.Game, error) {
	args := t.Called(ctx, tx, session)
	return args.Get(0).(data.Game), args.Error(1)
}

func (t *Transactional) GetPlayersBySession(ctx context.Context, tx *sql.Tx, session string) ([]data.Player, error) {
	args := t.Called(ctx, tx, session)
	return args.Get(0).([]data.Player), args.Error(1)
}

func (t *Transactional) GetWordHistoriesBySession(ctx context.Context, tx *sql.Tx, session string) ([]data.WordHistory, error) {
	args := t.Called(ctx, tx, session)
	return args.Get(0).([]data.WordHistory), args.Error(1)
}

func (t *Transactional) GetGamesByPlayerId(ctx context.Context, playerId data.PlayerId, ended bool) ([]data.Game, error) {
	args := t.Called(ctx, playerId, ended)
	return args.Get(0).([]data.Game), args.Error(1)
}

func (t *Transactional) GetPlayerById(ctx context.Context, playerId data.PlayerId) (data.Player, error) {
	args := t.Called(ctx, playerId)
	return args.Get(0).(data.Player), args.Error(1)
}

func (t *Transactional) LogPlayedWord(ctx context.Context, tx *sql.Tx, session string, playerId data.PlayerId, word string) error {
	return t.Called(ctx, tx, session, playerId, word).Error(0)
}

func (t *Transactional) ClaimLetters(ctx context.Context, tx *sql.Tx, session string, letterIds []data.LetterId, gamer data.PlayerId) error {
	return t.Called(ctx, tx, session, letterIds, gamer).Error(0)
}

func (t *Transactional) UpdateGame(ctx context.Context, tx *sql.Tx, game data.Game) error {
	return t.Called().Error(0)
}

type suite struct {
	trans    *Transactional
	dict     *Dictionary
	corpus   *Corpus
	notifier *Notifier
	svc      service.Service
}

func newSuite() *suite {
	trans := &Transactional{}
	dict := &Dictionary{}
	corpus := &Corpus{}
	notifier := newNotifier()
	svc := service.NewService(
		trans,
		map[string]dictionary.Dictionary{"en-us": dict},
		corpus,
		notifier,
		zerolog.Nop(),
	)
	return &suite{trans, dict, corpus, notifier, svc}
}
