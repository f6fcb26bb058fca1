package main

import (
	"github.com/beanboi7/chyp8/cmd"

	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl needs the main thread, the commands run inside it
	pixelgl.Run(runChyp8)
}

func runChyp8() {
	cmd.Execute()
}
