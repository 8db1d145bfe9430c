package main

import (
	"os"

	"github.com/audiolux/audiolux/server/mockservice"
)

func main() {
	if err := mockservice.Run(); err != nil {
		os.Exit(1)
	}
}
