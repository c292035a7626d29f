package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Screen is one section of the menu.
type Screen interface {
	Title() string
	Show(ctx context.Context) error
}

// Menu drives the interactive loop: one screen action at a time, elapsed
// time reported after each, errors displayed without ending the loop.
type Menu struct {
	io      *Console
	log     zerolog.Logger
	screens []Screen
}

// NewMenu creates the root menu over the given screens.
func NewMenu(io *Console, log zerolog.Logger, screens ...Screen) *Menu {
	return &Menu{
		io:      io,
		log:     log,
		screens: screens,
	}
}

// Run loops until the user picks Exit or the input stream closes. A failed
// screen action never terminates the loop.
func (m *Menu) Run(ctx context.Context) error {
	titles := make([]string, 0, len(m.screens)+1)
	for _, s := range m.screens {
		titles = append(titles, s.Title())
	}
	titles = append(titles, "Exit")

	for {
		choice, err := m.io.Choose("Finance Tracker", titles)
		if err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			return err
		}
		if choice == len(m.screens) {
			m.io.Println("Bye.")
			return nil
		}

		screen := m.screens[choice]
		if err := m.timed(ctx, screen); err != nil {
			if errors.Is(err, ErrClosed) {
				return nil
			}
			m.io.Warn(err.Error())
			m.log.Error().Err(err).Str("screen", screen.Title()).Msg("screen action failed")
		}
	}
}

// timed runs the screen and reports elapsed wall-clock time afterwards.
func (m *Menu) timed(ctx context.Context, screen Screen) error {
	start := time.Now()
	err := screen.Show(ctx)
	elapsed := time.Since(start)

	m.io.Println(fmt.Sprintf("[%s] took %d ms", screen.Title(), elapsed.Milliseconds()))
	m.log.Debug().Str("screen", screen.Title()).Dur("elapsed", elapsed).Msg("screen finished")
	return err
}
