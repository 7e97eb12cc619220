package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"war/game"
	"war/gamemaster"
	"war/messages"
	"war/meta"
	"war/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Session runs one interactive game over a console.
type Session struct {
	in      *bufio.Reader
	out     io.Writer
	printer *message.Printer
	rules   game.Rules
	dice    game.Randomizer
	clear   bool
	master  *gamemaster.GameMaster
	mission game.Mission
}

var _ Engine = (*Session)(nil)

type Option func(s *Session)

func WithRandomizer(dice game.Randomizer) Option {
	return func(s *Session) {
		if dice != nil {
			s.dice = dice
		}
	}
}

func WithRules(rules game.Rules) Option {
	return func(s *Session) {
		if rules != nil {
			s.rules = rules
		}
	}
}

func WithClearScreen(clear bool) Option {
	return func(s *Session) {
		s.clear = clear
	}
}

func WithLanguage(tag language.Tag) Option {
	return func(s *Session) {
		s.printer = messages.Printer(tag)
	}
}

func LocalEngine(in io.Reader, out io.Writer, options ...Option) *Session {
	s := &Session{ // Default values
		in:      bufio.NewReader(in),
		out:     out,
		printer: messages.Printer(messages.Default()),
		rules:   game.NewStandardRules(),
		clear:   true,
	}
	for _, option := range options {
		option(s)
	}
	if s.dice == nil {
		s.dice = game.NewRandomizer(uint64(time.Now().UnixNano()))
	}
	return s
}

// Registry exposes the session's territories once Setup has run.
func (s *Session) Registry() *game.Registry {
	if s.master == nil {
		return nil
	}
	return s.master.Registry()
}

func (s *Session) Mission() game.Mission {
	return s.mission
}

// Setup registers the territories, asks for the player's color and draws the mission.
func (s *Session) Setup() error {
	territories := make([]game.Territory, 0, meta.NUM_TERRITORIES)
	for i := 0; i < meta.NUM_TERRITORIES; i++ {
		s.printer.Fprintf(s.out, "setup.territory_header", i+1)
		t, err := s.readTerritory(territories)
		if err != nil {
			return err
		}
		territories = append(territories, t)
	}

	registry, err := game.NewRegistry(territories)
	if err != nil {
		s.printer.Fprintf(s.out, "error.registry", err)
		return err
	}
	log.Info().Int("territories", registry.Len()).Uint64("hash", uint64(registry.Hash())).Msg("registry created")

	player, err := s.readText("setup.player_color")
	if err != nil {
		return err
	}

	s.master = gamemaster.NewGameMaster(registry, player, s.rules, s.dice)
	s.mission = game.DrawMission(s.dice)
	log.Info().Str("player", s.master.Player()).Stringer("mission", s.mission).Msg("mission drawn")
	return nil
}

func (s *Session) readTerritory(registered []game.Territory) (game.Territory, error) {
	var t game.Territory
	for {
		name, err := s.readText("setup.name")
		if err != nil {
			return t, err
		}
		taken := utils.FindIndexFunc(registered, func(r game.Territory) bool { return r.Name == name }) >= 0
		if name != "" && !taken {
			t.Name = name
			break
		}
		s.printer.Fprintf(s.out, "setup.invalid_name")
	}

	color, err := s.readText("setup.color")
	if err != nil {
		return t, err
	}
	t.Color = color

	troops, err := s.readTroops()
	if err != nil {
		return t, err
	}
	t.Troops = troops
	return t, nil
}

// Run executes the setup and then the menu loop until the player wins or leaves.
func (s *Session) Run() (Outcome, error) {
	if err := s.Setup(); err != nil {
		return Outcome{}, fmt.Errorf("session setup: %w", err)
	}

	turns := 0
	for {
		s.clearScreen()
		s.printer.Fprintf(s.out, "title")
		s.renderMap()
		s.renderMission()
		s.renderMenu()
		s.printer.Fprintf(s.out, "menu.prompt")

		line, err := s.readLine()
		if err != nil {
			return s.closed(turns, err)
		}
		turns++

		won := false
		switch parseOption(line) {
		case 1:
			if err := s.attackPhase(); err != nil {
				return s.closed(turns, err)
			}
		case 2:
			won = s.master.CheckMission(s.mission)
			if won {
				s.printer.Fprintf(s.out, "mission.won")
			} else {
				s.printer.Fprintf(s.out, "mission.pending")
			}
		case 0:
			s.printer.Fprintf(s.out, "menu.leaving")
			log.Info().Int("turns", turns).Msg("player left the game")
			return Outcome{Reason: ReasonQuit, Mission: s.mission, Turns: turns}, nil
		default:
			s.printer.Fprintf(s.out, "menu.invalid")
		}

		if won {
			log.Info().Int("turns", turns).Stringer("mission", s.mission).Msg("mission completed")
			return Outcome{Reason: ReasonWon, Mission: s.mission, Turns: turns}, nil
		}

		s.printer.Fprintf(s.out, "menu.continue")
		if _, err := s.readLine(); err != nil {
			return s.closed(turns, err)
		}
	}
}

// closed ends the loop when the input runs out; read failures are passed on.
func (s *Session) closed(turns int, err error) (Outcome, error) {
	outcome := Outcome{Reason: ReasonInputClosed, Mission: s.mission, Turns: turns}
	if !errors.Is(err, ErrInputClosed) {
		return outcome, fmt.Errorf("read input: %w", err)
	}
	log.Info().Int("turns", turns).Msg("input closed")
	return outcome, nil
}

// attackPhase reads the origin and destination and reports the result. Only input errors are returned.
func (s *Session) attackPhase() error {
	origin, err := s.readText("attack.origin")
	if err != nil {
		return err
	}
	destination, err := s.readText("attack.destination")
	if err != nil {
		return err
	}

	before := s.master.Registry().Hash()
	outcome, err := s.master.Attack(origin, destination)
	if err != nil {
		log.Warn().Err(err).Str("origin", origin).Str("destination", destination).Msg("attack rejected")
		s.printer.Fprintf(s.out, rejectionKey(err))
		return nil
	}
	log.Debug().Bool("changed", before != s.master.Registry().Hash()).Msg("registry after attack")

	s.printer.Fprintf(s.out, "attack.rolls", outcome.AttackRoll, outcome.DefenseRoll)
	if outcome.AttackerWon {
		s.printer.Fprintf(s.out, "attack.victory")
		if outcome.Conquered {
			s.printer.Fprintf(s.out, "attack.conquered")
		}
	} else {
		s.printer.Fprintf(s.out, "attack.defended")
	}
	return nil
}

func rejectionKey(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidTerritoryName):
		return "error.invalid_territory"
	case errors.Is(err, game.ErrSelfAttack):
		return "error.self_attack"
	case errors.Is(err, game.ErrUnauthorizedAttacker):
		return "error.unauthorized"
	case errors.Is(err, game.ErrInsufficientTroops):
		return "error.insufficient_troops"
	default:
		return "menu.invalid"
	}
}
