package main

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lpgame/letterpool/data/transactional"
)

const batchSize = 500

// Loads a newline separated word list into the english_words table. The
// table is the corpus matches draw their letter pools from.
//
//	MYSQL_DSN=... WORDS_FILE=words.txt go run ./app/seed
func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	err := godotenv.Load(".env")
	if err != nil {
		logger.Info().Msg("no .env, using system's environment variables instead")
	}

	db, err := sql.Open("mysql", os.Getenv("MYSQL_DSN"))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot open mysql")
	}

	wordsFile := os.Getenv("WORDS_FILE")
	file, err := os.Open(wordsFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", wordsFile).Msg("cannot open word list")
	}
	defer file.Close()

	ctx := context.Background()
	trans := transactional.NewTransactional(db)
	if err := trans.CreateTables(ctx); err != nil {
		logger.Fatal().Err(err).Msg("cannot create tables")
	}

	var (
		batch  []string
		nextId = uint32(1)
		total  = 0
	)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := trans.InsertWords(ctx, nextId, batch); err != nil {
			logger.Fatal().Err(err).Uint32("first_id", nextId).Msg("cannot insert words")
		}
		nextId += uint32(len(batch))
		total += len(batch)
		batch = batch[:0]
	}

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" {
			continue
		}
		batch = append(batch, word)
		if len(batch) == batchSize {
			flush()
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Fatal().Err(err).Msg("cannot read word list")
	}
	flush()

	logger.Info().Int("words", total).Msg("corpus seeded")
}
