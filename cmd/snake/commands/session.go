package commands

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/toroidal/snake/config"
	"github.com/toroidal/snake/game"
	"github.com/toroidal/snake/grid"
)

var (
	seed  int64
	debug bool
)

// newState builds a fresh session, drawing a seed from the OS entropy source
// unless --seed pinned one. Failing to obtain entropy is fatal; the
// simulation itself has no failure modes.
func newState() *game.State {
	s := seed
	if s == 0 {
		drawn, err := randomSeed()
		if err != nil {
			log.WithError(err).Fatal("unable to seed the session")
		}
		s = drawn
	}
	return game.New(game.Config{Board: grid.Default(), Seed: s})
}

func randomSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, errors.Wrap(err, "commands: read entropy")
	}
	return int64(binary.BigEndian.Uint64(buf[:])), nil
}

func setupLogging() {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	if debug {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}
