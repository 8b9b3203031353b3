package envconfig

import (
	"encoding/json"
	"testing"

	"github.com/kbandits/kbandits/environment/bandit"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name   SourceName
		create func(Config) bool
	}{
		{Stationary, func(c Config) bool {
			s, err := c.Create(1)
			_, ok := s.(*bandit.Stationary)
			return err == nil && ok
		}},
		{NonStationary, func(c Config) bool {
			s, err := c.Create(1)
			_, ok := s.(*bandit.NonStationary)
			return err == nil && ok
		}},
	}

	for _, test := range tests {
		c := NewConfig(test.name)
		if err := c.Validate(); err != nil {
			t.Errorf("%v: %v", test.name, err)
		}
		if !test.create(c) {
			t.Errorf("%v: could not create reward source", test.name)
		}
	}
}

func TestValidate(t *testing.T) {
	invalid := []Config{
		{Source: "Adversarial", Actions: 10},
		{Source: Stationary, Actions: 0},
		{Source: NonStationary, Actions: 10, DriftStd: -1},
	}

	for _, c := range invalid {
		if err := c.Validate(); err == nil {
			t.Errorf("expected error validating %+v", c)
		}
	}

	if _, err := (Config{Source: "Adversarial", Actions: 3}).Create(1); err == nil {
		t.Error("expected error creating unknown reward source")
	}
}

func TestJSON(t *testing.T) {
	c := NewConfig(NonStationary)
	c.DriftStd = 0.05

	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}

	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("expected %+v, got %+v", c, got)
	}
}
