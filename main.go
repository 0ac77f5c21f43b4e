package main

import (
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	"wordlecli/cmd"
)

func main() {
	// exit promptly on Ctrl-C even while blocked reading a guess
	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt)
	go listenForInterrupt(stopChan)

	cmd.Execute()
}

func listenForInterrupt(stopChan chan os.Signal) {
	<-stopChan
	log.Fatal().Msg("Interrupt signal received. Exiting...")
}
