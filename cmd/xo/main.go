package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/jaminalder/xo-tic-tac-toe/internal/cli"
)

func main() {
	think := flag.Duration("think", 1200*time.Millisecond, "Length of the AI thinking animation, 0 to disable it")
	noClear := flag.Bool("no-clear", false, "Do not clear the screen between moves")
	flag.Parse()

	err := cli.Run(cli.Options{
		In:    os.Stdin,
		Out:   os.Stdout,
		Think: *think,
		Clear: !*noClear,
	})
	if err != nil {
		log.Fatal(err)
	}
}
