package main

import "github.com/1hpEcVns/ComplierFrontEnd/cmd"

var version = "v0.1.0"

func main() {
	cmd.Execute(version)
}
