// Package store persists recorded examples as parquet files, one row per example.
package store

import (
	"os"
	"path/filepath"

	"github.com/gorgonia/dobutsu"
	"github.com/gorgonia/dobutsu/game"
	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
	"github.com/pkg/errors"
)

// SchemaVersion is written to the key value metadata of every file.
const SchemaVersion = "dobutsu_example_v1"

// ExampleRow is a single training sample.
//
// Board holds the encoded canonical state the mover saw. Policy is indexed by action in the
// mover's frame. Value is the final result from the mover's point of view.
type ExampleRow struct {
	GameID string    `parquet:"game_id,dict"`
	Ply    int32     `parquet:"ply"`
	Player int32     `parquet:"player"`
	Board  []float32 `parquet:"board"`
	Policy []float32 `parquet:"policy"`
	Value  float32   `parquet:"value"`
	Source string    `parquet:"source,dict"`
}

// Rows converts examples into rows tagged with source.
func Rows(examples []dobutsu.Example, source string) []ExampleRow {
	rows := make([]ExampleRow, 0, len(examples))
	for _, ex := range examples {
		rows = append(rows, ExampleRow{
			GameID: ex.GameID,
			Ply:    int32(ex.Ply),
			Player: int32(ex.Player),
			Board:  ex.Board,
			Policy: ex.Policy,
			Value:  ex.Value,
			Source: source,
		})
	}
	return rows
}

// Example converts a row back into an example.
func (r ExampleRow) Example() dobutsu.Example {
	return dobutsu.Example{
		GameID: r.GameID,
		Ply:    int(r.Ply),
		Player: game.Player(r.Player),
		Board:  r.Board,
		Policy: r.Policy,
		Value:  r.Value,
	}
}

// WriteExamples writes examples to outPath. The file is written next to outPath first and renamed
// into place, so readers never see a partial file.
func WriteExamples(outPath string, examples []dobutsu.Example, source string) error {
	if len(examples) == 0 {
		return errors.New("no examples to write")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return errors.Wrap(err, "create output dir")
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, Rows(examples, source),
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", SchemaVersion),
	); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "write parquet")
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return errors.Wrap(err, "rename parquet")
	}
	return nil
}

// ReadExamples reads back a file written by WriteExamples.
func ReadExamples(path string) ([]dobutsu.Example, error) {
	rows, err := parquet.ReadFile[ExampleRow](path)
	if err != nil {
		return nil, errors.Wrapf(err, "read parquet %q", path)
	}
	examples := make([]dobutsu.Example, 0, len(rows))
	for _, r := range rows {
		examples = append(examples, r.Example())
	}
	return examples, nil
}
