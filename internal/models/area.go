package models

// Area - зона обслуживания (район), вершина графа маршрутов
type Area struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Edge - неориентированное ребро между районами с неотрицательным весом (км)
type Edge struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}
