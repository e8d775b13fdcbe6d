package pokemon

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	_ "embed"
)

//go:embed data/type_chart.csv
var chartCSV []byte

// effectTable[attacker][defender] holds the damage multiplier. Rows and
// columns follow PokeType order; the CSV header row names the columns.
var effectTable [NumTypes][NumTypes]float64

func init() {
	if err := loadChart(chartCSV); err != nil {
		panic(fmt.Sprintf("pokemon: bad embedded type chart: %v", err))
	}
}

func loadChart(data []byte) error {
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return err
	}
	if len(records) != NumTypes+1 {
		return fmt.Errorf("expected %d chart rows, got %d", NumTypes, len(records)-1)
	}
	for i, name := range records[0] {
		parsed, err := ParseType(name)
		if err != nil {
			return err
		}
		if int(parsed) != i {
			return fmt.Errorf("chart column %d is %q, out of type order", i, name)
		}
	}
	for i, row := range records[1:] {
		if len(row) != NumTypes {
			return fmt.Errorf("chart row %d has %d columns, want %d", i, len(row), NumTypes)
		}
		for j, cell := range row {
			mult, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return fmt.Errorf("chart row %d column %d: %w", i, j, err)
			}
			effectTable[i][j] = mult
		}
	}
	return nil
}

// Effectiveness returns the multiplier applied when an attack of one
// type hits a Pokemon of another.
func Effectiveness(attack, defend PokeType) float64 {
	return effectTable[attack][defend]
}
