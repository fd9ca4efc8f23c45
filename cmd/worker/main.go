package main

import "github.com/MarcDufresne/tangerine-account-checker/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
