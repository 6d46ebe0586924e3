package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"volscan/internal/common"
	"volscan/internal/engine"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

const (
	budgetPrompt   = "Enter your budget: "
	riskPrompt     = "Enter your risk tolerance (1 = Low, 2 = Medium, 3 = High): "
	sectorPrompt   = "Enter your preferred industry (or leave blank for no preference): "
	strategyPrompt = "Enter your preferred data structure ('1' for Heap, '2' for Map): "
	continuePrompt = "Enter 1 to continue or 0 to quit: "
	invalidChoice  = "Invalid choice"
	invalidNumber  = "Invalid number, try again."
)

// Session runs queries read from a person at a terminal until they quit.
type Session struct {
	in     *bufio.Reader
	out    io.Writer
	engine *engine.Engine
}

func New(in io.Reader, out io.Writer, eng *engine.Engine) *Session {
	return &Session{
		in:     bufio.NewReader(in),
		out:    out,
		engine: eng,
	}
}

// Run prompts for queries until the person answers 0 to the continue prompt,
// input ends, or the tomb starts dying. A dying tomb is only noticed between
// prompts.
func (s *Session) Run(t *tomb.Tomb) error {
	for {
		select {
		case <-t.Dying():
			return nil
		default:
		}

		err := s.runOnce()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		answer, err := s.readLine(continuePrompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(answer) == "0" {
			log.Info().Msg("session ended")
			return nil
		}
	}
}

// runOnce takes one query from the person and answers it.
func (s *Session) runOnce() error {
	budget, err := s.readFloat(budgetPrompt)
	if err != nil {
		return err
	}
	risk, err := s.readInt(riskPrompt)
	if err != nil {
		return err
	}
	sector, err := s.readLine(sectorPrompt)
	if err != nil {
		return err
	}

	// The match count is shown before the structure is chosen.
	constraints := common.Constraints{
		Budget:          budget,
		RiskTolerance:   risk,
		PreferredSector: sector,
	}
	query := common.NewQuery(constraints, 0)
	candidates := s.engine.Candidates(query.ID, constraints)

	choice, err := s.readLine(strategyPrompt)
	if err != nil {
		return err
	}
	query.Strategy, err = common.ParseStrategy(choice)
	if err != nil {
		_, err = fmt.Fprintln(s.out, invalidChoice)
		return err
	}

	_, err = s.engine.Select(query, candidates)
	return err
}

// readLine prints the prompt and returns the next line without its line
// ending. A final line with no newline is returned before io.EOF.
func (s *Session) readLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(s.out, prompt); err != nil {
		return "", err
	}
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Session) readFloat(prompt string) (float64, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
		if _, err := fmt.Fprintln(s.out, invalidNumber); err != nil {
			return 0, err
		}
	}
}

func (s *Session) readInt(prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}
		if _, err := fmt.Fprintln(s.out, invalidNumber); err != nil {
			return 0, err
		}
	}
}
