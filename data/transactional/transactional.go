package transactional

import (
	"github.com/lpgame/letterpool/data"

	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

type Transactional struct {
	db *sql.DB
}

func NewTransactional(db *sql.DB) *Transactional {
	return &Transactional{
		db: db,
	}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// queryerOf lets read methods run inside a transaction or straight on the
// pool when tx is nil.
func (t *Transactional) queryerOf(tx *sql.Tx) queryer {
	if tx != nil {
		return tx
	}
	return t.db
}

// CreateTables bootstraps the schema. Safe to call on every start.
func (t *Transactional) CreateTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS players (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(64) NOT NULL UNIQUE,
			full_name VARCHAR(128) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS games (
			session VARCHAR(40) NOT NULL PRIMARY KEY,
			current_player BIGINT UNSIGNED NOT NULL,
			ended BOOLEAN NOT NULL DEFAULT FALSE,
			winner BIGINT UNSIGNED NULL
		)`,
		`CREATE TABLE IF NOT EXISTS letters (
			session VARCHAR(40) NOT NULL,
			letter_id SMALLINT UNSIGNED NOT NULL,
			letter CHAR(1) NOT NULL,
			gamer BIGINT UNSIGNED NULL,
			PRIMARY KEY (session, letter_id)
		)`,
		`CREATE TABLE IF NOT EXISTS games_players (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			session VARCHAR(40) NOT NULL,
			player_id BIGINT UNSIGNED NOT NULL,
			UNIQUE KEY session_player (session, player_id)
		)`,
		`CREATE TABLE IF NOT EXISTS played_words (
			id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
			session VARCHAR(40) NOT NULL,
			player_id BIGINT UNSIGNED NOT NULL,
			word VARCHAR(30) NOT NULL,
			UNIQUE KEY session_word (session, word)
		)`,
		`CREATE TABLE IF NOT EXISTS english_words (
			word_id INT UNSIGNED NOT NULL PRIMARY KEY,
			word VARCHAR(30) NOT NULL
		)`,
	}
	for _, statement := range statements {
		if _, err := t.db.ExecContext(ctx, statement); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transactional) BeginTransaction(ctx context.Context) (*sql.Tx, error) {
	tx, err := t.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelWriteCommitted,
		ReadOnly:  false,
	})
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (t *Transactional) FinalizeTransaction(tx *sql.Tx, err error) error {
	if err != nil {
		if errRollback := tx.Rollback(); errRollback != nil {
			return errRollback
		}
		return err
	}
	return tx.Commit()
}

func (t *Transactional) InsertGame(ctx context.Context, tx *sql.Tx, game data.Game) (data.Game, error) {
	var winner interface{}
	if game.Winner != 0 {
		winner = uint64(game.Winner)
	}
	_, err := tx.ExecContext(
		ctx,
		"INSERT INTO games (session, current_player, ended, winner) VALUES (?, ?, ?, ?)",
		game.Session, uint64(game.CurrentPlayer), game.Ended, winner,
	)
	if err != nil {
		return data.Game{}, err
	}

	letterArgs := ""
	letterValues := make([]interface{}, 3*len(game.Letters))
	for i, letter := range game.Letters {
		letterArgs += "(?,?,?)"
		if i < len(game.Letters)-1 {
			letterArgs += ","
		}
		letterValues[i*3] = game.Session
		letterValues[i*3+1] = uint16(letter.Id)
		letterValues[i*3+2] = string(letter.Letter)
	}
	_, err = tx.ExecContext(
		ctx,
		fmt.Sprintf(
			"INSERT INTO letters (session, letter_id, letter) VALUES %v",
			letterArgs,
		),
		letterValues...,
	)
	if err != nil {
		return data.Game{}, err
	}

	return game, nil
}

func (t *Transactional) InsertGamePlayer(ctx context.Context, tx *sql.Tx, game data.Game, player data.Player) (data.Game, error) {
	_, err := tx.ExecContext(
		ctx,
		"INSERT INTO games_players (session, player_id) VALUES (?, ?)",
		game.Session, uint64(player.Id),
	)
	if err != nil {
		return data.Game{}, err
	}

	game.Players = append(game.Players, player.Id)
	return game, nil
}

func (t *Transactional) GetGameBySession(ctx context.Context, tx *sql.Tx, session string) (data.Game, error) {
	var game data.Game
	var winner sql.NullInt64

	row := t.queryerOf(tx).QueryRowContext(
		ctx,
		"SELECT current_player, ended, winner FROM games WHERE session = ?",
		session,
	)
	err := row.Scan(&game.CurrentPlayer, &game.Ended, &winner)
	if err == sql.ErrNoRows {
		return data.Game{}, data.ErrorGameNotFound
	}
	if err != nil {
		return data.Game{}, err
	}
	if winner.Valid {
		game.Winner = data.PlayerId(winner.Int64)
	}
	game.Session = session

	rows, err := t.queryerOf(tx).QueryContext(
		ctx,
		"SELECT letter_id, letter, gamer FROM letters WHERE session = ? ORDER BY letter_id",
		session,
	)
	if err != nil {
		return data.Game{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var letter data.Letter
		var char string
		var gamer sql.NullInt64
		err = rows.Scan(&letter.Id, &char, &gamer)
		if err != nil {
			return data.Game{}, err
		}
		letter.Letter = char[0]
		if gamer.Valid {
			letter.Gamer = data.PlayerId(gamer.Int64)
		}
		game.Letters = append(game.Letters, letter)
	}

	return game, nil
}

func (t *Transactional) GetPlayersBySession(ctx context.Context, tx *sql.Tx, session string) ([]data.Player, error) {
	rows, err := t.queryerOf(tx).QueryContext(
		ctx,
		"SELECT players.id, players.username, players.full_name FROM players JOIN games_players ON games_players.player_id = players.id WHERE games_players.session = ? ORDER BY games_players.id",
		session,
	)
	if err != nil {
		return []data.Player{}, err
	}
	defer rows.Close()

	players := make([]data.Player, 0)
	for rows.Next() {
		player := data.Player{}
		err := rows.Scan(&player.Id, &player.Username, &player.FullName)
		if err != nil {
			return []data.Player{}, err
		}
		players = append(players, player)
	}

	return players, nil
}

func (t *Transactional) GetWordHistoriesBySession(ctx context.Context, tx *sql.Tx, session string) ([]data.WordHistory, error) {
	rows, err := t.queryerOf(tx).QueryContext(
		ctx,
		"SELECT player_id, word FROM played_words WHERE session = ? ORDER BY id",
		session,
	)
	if err != nil {
		return []data.WordHistory{}, err
	}
	defer rows.Close()

	histories := make([]data.WordHistory, 0)
	for rows.Next() {
		var gamer data.PlayerId
		var word string
		err := rows.Scan(&gamer, &word)
		if err != nil {
			return []data.WordHistory{}, err
		}

		logged := false
		for i := range histories {
			if histories[i].Gamer == gamer {
				histories[i].Words = append(histories[i].Words, word)
				logged = true
				break
			}
		}
		if !logged {
			histories = append(histories, data.WordHistory{
				Gamer: gamer,
				Words: []string{word},
			})
		}
	}

	return histories, nil
}

// GetGamesByPlayerId lists a player's games without letters or histories,
// enough for an overview.
func (t *Transactional) GetGamesByPlayerId(ctx context.Context, playerId data.PlayerId, ended bool) ([]data.Game, error) {
	rows, err := t.db.QueryContext(
		ctx,
		"SELECT games.session, games.current_player, games.ended, games.winner FROM games JOIN games_players ON games_players.session = games.session WHERE games_players.player_id = ? AND games.ended = ?",
		uint64(playerId), ended,
	)
	if err != nil {
		return []data.Game{}, err
	}
	defer rows.Close()

	games := make([]data.Game, 0)
	for rows.Next() {
		var game data.Game
		var winner sql.NullInt64
		err := rows.Scan(&game.Session, &game.CurrentPlayer, &game.Ended, &winner)
		if err != nil {
			return []data.Game{}, err
		}
		if winner.Valid {
			game.Winner = data.PlayerId(winner.Int64)
		}
		games = append(games, game)
	}

	return games, nil
}

func (t *Transactional) GetPlayerById(ctx context.Context, playerId data.PlayerId) (data.Player, error) {
	row := t.db.QueryRowContext(
		ctx,
		"SELECT username, full_name FROM players WHERE id = ?",
		uint64(playerId),
	)

	player := data.Player{Id: playerId}
	err := row.Scan(&player.Username, &player.FullName)
	if err == sql.ErrNoRows {
		return data.Player{}, data.ErrorPlayerNotFound
	}
	if err != nil {
		return data.Player{}, err
	}

	return player, nil
}

func (t *Transactional) LogPlayedWord(ctx context.Context, tx *sql.Tx, session string, playerId data.PlayerId, word string) error {
	_, err := tx.ExecContext(
		ctx,
		"INSERT INTO played_words (session, player_id, word) VALUES (?, ?, ?)",
		session, uint64(playerId), word,
	)
	return err
}

func (t *Transactional) ClaimLetters(ctx context.Context, tx *sql.Tx, session string, letterIds []data.LetterId, gamer data.PlayerId) error {
	if len(letterIds) == 0 {
		return nil
	}

	args := make([]interface{}, 0, len(letterIds)+2)
	args = append(args, uint64(gamer), session)
	placeholders := ""
	for i, letterId := range letterIds {
		placeholders += "?"
		if i < len(letterIds)-1 {
			placeholders += ","
		}
		args = append(args, uint16(letterId))
	}

	_, err := tx.ExecContext(
		ctx,
		fmt.Sprintf(
			"UPDATE letters SET gamer = ? WHERE session = ? AND letter_id IN (%v)",
			placeholders,
		),
		args...,
	)
	return err
}

func (t *Transactional) UpdateGame(ctx context.Context, tx *sql.Tx, game data.Game) error {
	var winner interface{}
	if game.Winner != 0 {
		winner = uint64(game.Winner)
	}
	_, err := tx.ExecContext(
		ctx,
		"UPDATE games SET current_player = ?, ended = ?, winner = ? WHERE session = ?",
		uint64(game.CurrentPlayer), game.Ended, winner, game.Session,
	)
	return err
}

// CountWords reports the corpus size. Word ids are dense, so any id in
// [1, count] resolves.
func (t *Transactional) CountWords(ctx context.Context) (uint32, error) {
	row := t.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM english_words")

	var count uint32
	err := row.Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (t *Transactional) GetWordById(ctx context.Context, wordId uint32) (string, error) {
	row := t.db.QueryRowContext(ctx, "SELECT word FROM english_words WHERE word_id = ?", wordId)

	var word string
	err := row.Scan(&word)
	if err != nil {
		return "", err
	}

	return word, nil
}

func (t *Transactional) InsertWords(ctx context.Context, firstId uint32, words []string) error {
	if len(words) == 0 {
		return nil
	}

	wordArgs := ""
	wordValues := make([]interface{}, 2*len(words))
	for i, word := range words {
		wordArgs += "(?,?)"
		if i < len(words)-1 {
			wordArgs += ","
		}
		wordValues[i*2] = firstId + uint32(i)
		wordValues[i*2+1] = word
	}

	_, err := t.db.ExecContext(
		ctx,
		fmt.Sprintf(
			"INSERT INTO english_words (word_id, word) VALUES %v",
			wordArgs,
		),
		wordValues...,
	)
	return err
}
