package main

import "os"

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newApp().execute(os.Args[1:]); err != nil {
		fatal(err)
	}
}
