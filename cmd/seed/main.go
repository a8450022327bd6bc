// Seeds the account file with demo patients so the shell has something to
// log into during development.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/sportsclinic/injury-clinic/internal/patient"
	"github.com/sportsclinic/injury-clinic/internal/person"
	"github.com/sportsclinic/injury-clinic/internal/store"
)

func main() {
	path := flag.String("accounts", "accounts.txt", "path of the account file")
	count := flag.Int("count", 25, "number of demo patients to create")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	logger.Info().Str("path", *path).Int("count", *count).Msg("seed starting")

	gofakeit.Seed(time.Now().UnixNano())

	st := store.New(*path, logger)
	if err := st.Load(); err != nil {
		logger.Fatal().Err(err).Msg("load account store")
	}

	added := 0
	for i := 0; i < *count; i++ {
		username := gofakeit.Username()
		if st.IsUsernameTaken(username) {
			continue
		}

		profile, err := person.NewProfile(
			gofakeit.Name(),
			gofakeit.Number(16, 45),
			gofakeit.Bool(),
			fmt.Sprintf("01%09d", gofakeit.Number(0, 999999999)),
			// Street only: the account format cannot carry commas.
			gofakeit.Street(),
		)
		if err != nil {
			logger.Fatal().Err(err).Msg("build demo profile")
		}

		p := patient.New(username, gofakeit.Password(true, true, true, false, false, 10), profile)
		if err := st.Add(p); err != nil {
			logger.Fatal().Err(err).Str("username", username).Msg("add demo patient")
		}
		added++
	}

	if err := st.Save(); err != nil {
		logger.Fatal().Err(err).Msg("save account store")
	}

	logger.Info().Int("added", added).Int("total", st.Len()).Msg("seed complete")
}
