package main

import "github.com/fikryfauzn/icarus/cmd/icarus"

func main() {
	icarus.Execute()
}
