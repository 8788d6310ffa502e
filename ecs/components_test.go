package ecs_test

import "github.com/plus3/carryloop/ecs"

type Position struct {
	X, Y float64
}

type Velocity struct {
	DX, DY float64
}

type Label struct {
	Text string
}

type Crate struct {
	Weight int
}

type Marker struct{}

type Coins int

type Clock struct {
	Ticks int
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Crate](registry)
	ecs.RegisterComponent[Marker](registry)
	ecs.RegisterComponent[Coins](registry)
	return registry
}
