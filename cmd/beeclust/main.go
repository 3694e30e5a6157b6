// Command beeclust runs the BeeClust bee-swarm simulation from the
// command line, either headless (batch mode, optionally fanning out many
// independent runs in parallel) or with an ebiten GUI viewer.
package main

import (
	"log"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
