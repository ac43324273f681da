package main

import "liferpg/cmd/rpg/root"

func main() {
	root.Execute()
}
