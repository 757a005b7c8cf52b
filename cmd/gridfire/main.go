package main

import "gridfire/internal/game"

func main() {
	game.RunDesktop()
}
