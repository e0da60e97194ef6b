package config

import (
	"errors"
	"flag"
	"io"
	"testing"

	"mazearena/pkg/game/world"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestValidate_CollectsProblems(t *testing.T) {
	c := Default()
	c.Players = 0
	c.Grid.Rows = 1
	c.BombTimer = 0

	err := c.Validate()
	if err == nil {
		t.Fatal("Validate accepted a broken config")
	}
	if !errors.Is(err, world.ErrGridConfig) {
		t.Errorf("Validate() = %v, want it to include the grid error", err)
	}
}

func TestRegisterFlags(t *testing.T) {
	c := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c.RegisterFlags(fs)

	err := fs.Parse([]string{"-seed", "9", "-rows", "11", "-players", "2", "-max-retries", "0", "-wall-density", "0.1"})
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if c.Seed != 9 || c.Grid.Rows != 11 || c.Players != 2 || c.MaxActionRetries != 0 || c.Grid.WallDensity != 0.1 {
		t.Errorf("parsed config = %+v", c)
	}
	if c.Grid.Cols != 40 {
		t.Errorf("untouched flag changed cols to %d", c.Grid.Cols)
	}
}
