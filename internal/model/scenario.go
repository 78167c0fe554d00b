package model

import (
	"encoding/json"
	"time"
)

// ScenarioKind names which engine produced a saved scenario.
type ScenarioKind string

const (
	ScenarioPayoff     ScenarioKind = "payoff"
	ScenarioGrowth     ScenarioKind = "growth"
	ScenarioMonteCarlo ScenarioKind = "monte-carlo"
	ScenarioHealth     ScenarioKind = "health"
	ScenarioForecast   ScenarioKind = "forecast"
)

// Scenario is a saved engine run: the inputs and the result, both as JSON.
type Scenario struct {
	ID        string          `json:"id"`
	Kind      ScenarioKind    `json:"kind"`
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
}
