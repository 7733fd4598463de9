package dobutsu

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Statistics keeps the running record of every agent after each game.
type Statistics struct {
	Creation []string
	Wins     map[string][]float32
	Losses   map[string][]float32
	Draws    map[string][]float32
}

func makeStatistics() Statistics {
	return Statistics{
		Creation: make([]string, 0, 64),
		Wins:     make(map[string][]float32),
		Losses:   make(map[string][]float32),
		Draws:    make(map[string][]float32),
	}
}

func (s *Statistics) update(A *Agent) {
	name := A.Name()
	if _, ok := s.Wins[name]; !ok {
		s.Creation = append(s.Creation, name)
	}

	wins, losses, draws := A.Record()
	s.Wins[name] = append(s.Wins[name], wins)
	s.Losses[name] = append(s.Losses[name], losses)
	s.Draws[name] = append(s.Draws[name], draws)
}

// WinRate returns the latest win rate of the named agent.
func (s *Statistics) WinRate(name string) float32 {
	wins := s.Wins[name]
	if len(wins) == 0 {
		return 0
	}
	i := len(wins) - 1
	return winRate(wins[i], s.Losses[name][i], s.Draws[name][i])
}

// Dump writes the win rate of every agent after each game as CSV. The header holds the agent names.
func (s *Statistics) Dump(filename string) error {
	f, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "unable to dump statistics to %q", filename)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(s.Creation); err != nil {
		return err
	}

	var rows int
	for _, agent := range s.Creation {
		if n := len(s.Wins[agent]); n > rows {
			rows = n
		}
	}
	records := make([][]string, 0, rows)
	for j := 0; j < rows; j++ {
		record := make([]string, len(s.Creation))
		for i, agent := range s.Creation {
			if j >= len(s.Wins[agent]) {
				continue
			}
			rate := winRate(s.Wins[agent][j], s.Losses[agent][j], s.Draws[agent][j])
			record[i] = strconv.FormatFloat(float64(rate), 'f', 3, 32)
		}
		records = append(records, record)
	}
	if err := w.WriteAll(records); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func winRate(wins, losses, draws float32) float32 {
	total := wins + losses + draws
	if total == 0 {
		return 0
	}
	return wins / total
}
