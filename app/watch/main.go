package main

import (
	"os"

	"github.com/go-redis/redis"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Tails the event channel of one match, the same stream a connected
// client would consume.
//
//	REDIS_URL=redis://... go run ./app/watch <session>
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	err := godotenv.Load(".env")
	if err != nil {
		logger.Info().Msg("no .env, using system's environment variables instead")
	}

	if len(os.Args) < 2 {
		logger.Fatal().Msg("usage: watch <session>")
	}
	session := os.Args[1]

	redisOptions, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot parse REDIS_URL")
	}
	client := redis.NewClient(redisOptions)

	pubsub := client.Subscribe("lpgame." + session)
	defer pubsub.Close()

	logger.Info().Str("session", session).Msg("watching")
	for message := range pubsub.Channel() {
		logger.Info().RawJSON("event", []byte(message.Payload)).Msg("received")
	}
}
