package engine

import (
	"fmt"
	"strings"
)

const clearSequence = "\033[H\033[2J"

func (s *Session) clearScreen() {
	if s.clear {
		fmt.Fprint(s.out, clearSequence)
	}
}

func (s *Session) renderMap() {
	p := s.printer
	p.Fprintf(s.out, "map.header")
	fmt.Fprintf(s.out, "%-20s | %-15s | %-10s\n", p.Sprintf("map.territory"), p.Sprintf("map.color"), p.Sprintf("map.troops"))
	fmt.Fprintln(s.out, strings.Repeat("-", 51))
	for _, t := range s.master.Registry().All() {
		fmt.Fprintf(s.out, "%-20s | %-15s | %-10d\n", t.Name, t.Color, t.Troops)
	}
}

func (s *Session) renderMission() {
	s.printer.Fprintf(s.out, "mission.header")
	s.printer.Fprintf(s.out, s.mission.Describe())
}

func (s *Session) renderMenu() {
	s.printer.Fprintf(s.out, "menu.header")
	s.printer.Fprintf(s.out, "menu.attack")
	s.printer.Fprintf(s.out, "menu.check")
	s.printer.Fprintf(s.out, "menu.exit")
}
