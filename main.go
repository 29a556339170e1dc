package main

import (
	"fmt"

	"github.com/s19960826/relearn/examples"
)

func main() {
	examples.Gridworld()
	fmt.Println()
	examples.Blackjack()
}
