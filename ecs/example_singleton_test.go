package ecs_test

import (
	"fmt"

	"github.com/plus3/carryloop/ecs"
)

type Wallet struct {
	Coins int
}

// ExampleNewSingleton shows that every accessor of a type shares one value.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	wallet := ecs.NewSingleton[Wallet](storage, Wallet{Coins: 10})
	wallet.Get().Coins += 15

	same := ecs.NewSingleton[Wallet](storage, Wallet{Coins: 999})
	fmt.Println(same.Get().Coins)

	var read *Wallet
	if storage.ReadSingleton(&read) {
		fmt.Println(read.Coins)
	}

	// Output:
	// 25
	// 25
}
