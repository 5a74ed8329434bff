package service

import (
	"context"
	"regexp"

	"github.com/lpgame/letterpool/data"
)

func (a *application) TakeTurn(ctx context.Context, session string, letterIds []data.LetterId, playerId data.PlayerId) (result data.TurnResult, err error) {
	defer a.lockSession(session)()

	var game data.Game
	var word string
	ended := false

	// events go out only once the mutation is committed
	defer func() {
		if err != nil {
			return
		}
		payload := map[string]interface{}{
			"letters": result.LetterIds,
			"score":   game.Score(),
			"word":    word,
		}
		if ended {
			payload["winner"] = game.Winner
			a.notify("game_over", payload, session, playerId)
		} else {
			a.notify("new_turn", payload, session, playerId)
		}
	}()

	tx, err := a.transactional.BeginTransaction(ctx)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}
	defer func() {
		err = a.finalize(tx, err)
	}()

	game, err = a.transactional.GetGameBySession(ctx, tx, session)
	if err != nil {
		err = storeError(err)
		return
	}

	players, err := a.transactional.GetPlayersBySession(ctx, tx, session)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}
	for _, seated := range players {
		game.Players = append(game.Players, seated.Id)
	}

	game.Histories, err = a.transactional.GetWordHistoriesBySession(ctx, tx, session)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}

	letters := make([]*data.Letter, len(letterIds))
	for i, letterId := range letterIds {
		letters[i], err = game.LetterById(letterId)
		if err != nil {
			return
		}
	}

	wordBytes := make([]byte, len(letters))
	for i, letter := range letters {
		wordBytes[i] = letter.Letter
	}
	word = string(wordBytes)
	if word == "" {
		err = ErrorNotAWord
		return
	}

	valid, err := a.dictionaries[language].LemmaIsValid(word)
	if err != nil {
		err = CollaboratorError{Op: "dictionary", Err: err}
		return
	}
	if !valid {
		err = ErrorNotAWord
		return
	}

	if game.HasPlayedWord(word) {
		err = ErrorWordAlreadyUsed
		return
	}

	// a tile's owner is set exactly once; claimed tiles cannot be reused
	// to spell another word
	for _, letter := range letters {
		if letter.Claimed() {
			err = ErrorLetterAlreadyClaimed
			return
		}
	}

	game.LogWord(playerId, word)
	err = a.transactional.LogPlayedWord(ctx, tx, session, playerId, word)
	if err != nil {
		if exist, _ := regexp.MatchString("Error 1062", err.Error()); exist {
			err = ErrorWordAlreadyUsed
		} else {
			err = CollaboratorError{Op: "store", Err: err}
		}
		return
	}

	for _, letter := range letters {
		letter.Gamer = playerId
	}
	err = a.transactional.ClaimLetters(ctx, tx, session, letterIds, playerId)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}

	game.ChangeCurrentPlayer()

	if game.AllLettersClaimed() {
		game.Ended = true
		game.Winner = game.ResolveWinner()
		ended = true
	}

	err = a.transactional.UpdateGame(ctx, tx, game)
	if err != nil {
		err = CollaboratorError{Op: "store", Err: err}
		return
	}

	result = data.TurnResult{
		LetterIds: letterIds,
		Word:      word,
		Ended:     ended,
	}

	a.logger.Debug().
		Str("session", session).
		Uint64("gamer", uint64(playerId)).
		Str("word", word).
		Msg("word played")
	if ended {
		a.logger.Info().
			Str("session", session).
			Uint64("winner", uint64(game.Winner)).
			Msg("game has ended")
	}
	return
}
