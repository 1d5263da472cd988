package main

import "github.com/Mohsinsiddi/w3play/cmd"

func main() {
	cmd.Execute()
}
