package engine

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"war/meta"
)

// maxLineBytes bounds what is kept of a single input line; the rest is discarded.
const maxLineBytes = 4096

// readLine returns the next input line without its line terminator.
// Lines of any length are consumed whole, only the first maxLineBytes are kept.
func (s *Session) readLine() (string, error) {
	var line []byte
	started := false
	for {
		chunk, isPrefix, err := s.in.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if started {
					break
				}
				return "", ErrInputClosed
			}
			return "", err
		}
		started = true
		if room := maxLineBytes - len(line); room > 0 {
			line = append(line, chunk[:min(room, len(chunk))]...)
		}
		if !isPrefix {
			break
		}
	}
	return strings.TrimRight(string(line), "\r"), nil
}

// readText reads a name or color, capped at meta.MAX_NAME_LENGTH characters.
func (s *Session) readText(prompt string) (string, error) {
	s.printer.Fprintf(s.out, prompt)
	line, err := s.readLine()
	if err != nil {
		return "", err
	}
	runes := []rune(line)
	if len(runes) > meta.MAX_NAME_LENGTH {
		line = string(runes[:meta.MAX_NAME_LENGTH])
	}
	return line, nil
}

// readTroops prompts until the player enters a whole number of at least one.
func (s *Session) readTroops() (int, error) {
	for {
		s.printer.Fprintf(s.out, "setup.troops")
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		troops, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && troops >= 1 {
			return troops, nil
		}
		s.printer.Fprintf(s.out, "setup.invalid_troops")
	}
}

// parseOption turns a menu line into an option, or -1 when it is not a number.
func parseOption(line string) int {
	option, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1
	}
	return option
}
