package main

import (
	"github.com/praktis/go-algorithms/cmd"
	"github.com/praktis/go-algorithms/log"
)

func main() {
	log.InitLogger()
	cmd.Execute()
}
