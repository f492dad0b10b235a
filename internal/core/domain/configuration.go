package domain

import (
	"encoding/json"
	"time"
)

// Configuration keys as they appear in persisted snapshots.
const (
	KeyForkPressure  = "forkPressure"
	KeyForkClicks    = "forkClicks"
	KeyShockPressure = "shockPressure"
	KeyShockClicks   = "shockClicks"
	KeyHasShock      = "hasShock"
	KeyFrontTirePSI  = "frontTirePSI"
	KeyRearTirePSI   = "rearTirePSI"
	KeyRiderWeight   = "riderWeight"
	KeyLastUpdated   = "lastUpdated"
)

// ConfigurationKeys lists every key a current-schema configuration carries.
var ConfigurationKeys = []string{
	KeyForkPressure, KeyForkClicks, KeyShockPressure, KeyShockClicks, KeyHasShock,
	KeyFrontTirePSI, KeyRearTirePSI, KeyRiderWeight, KeyLastUpdated,
}

type Configuration struct {
	ForkPressure  float64   `json:"forkPressure" validate:"min=0"`
	ForkClicks    float64   `json:"forkClicks" validate:"min=0"`
	ShockPressure float64   `json:"shockPressure" validate:"min=0"`
	ShockClicks   float64   `json:"shockClicks" validate:"min=0"`
	HasShock      bool      `json:"hasShock"`
	FrontTirePSI  float64   `json:"frontTirePSI" validate:"min=0"`
	RearTirePSI   float64   `json:"rearTirePSI" validate:"min=0"`
	RiderWeight   float64   `json:"riderWeight" validate:"min=0"`
	LastUpdated   time.Time `json:"lastUpdated"`

	// present records the keys found when decoded from JSON.
	// nil means the value was built in memory and every key is set.
	present map[string]bool
}

// Has reports whether key was set on this configuration.
func (c *Configuration) Has(key string) bool {
	if c == nil {
		return false
	}
	if c.present == nil {
		return true
	}
	return c.present[key]
}

// Normalize forces the shock fields to zero when the bike has no shock.
func (c *Configuration) Normalize() {
	if !c.HasShock {
		c.ShockPressure = 0
		c.ShockClicks = 0
	}
}

// Complete marks every key as set.
func (c *Configuration) Complete() {
	c.present = nil
}

func (c Configuration) Clone() Configuration {
	dup := c
	if c.present != nil {
		dup.present = make(map[string]bool, len(c.present))
		for k, v := range c.present {
			dup.present[k] = v
		}
	}
	return dup
}

func (c *Configuration) UnmarshalJSON(data []byte) error {
	type plain Configuration
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*c = Configuration(p)
	c.present = make(map[string]bool, len(keys))
	for k, v := range keys {
		if string(v) != "null" {
			c.present[k] = true
		}
	}
	return nil
}
