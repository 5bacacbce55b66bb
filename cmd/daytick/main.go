package main

import "daytick/cmd/daytick/root"

func main() {
	root.Execute()
}
