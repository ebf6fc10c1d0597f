package main

import "github.com/LiRem101/playing-with-voices/cmd"

func main() {
	cmd.Execute()
}
