package main

import "storage-assistant/cmd"

func main() {
	cmd.Execute()
}
