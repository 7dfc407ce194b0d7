package main

import "github.com/dbsmedya/firesnap/cmd/firesnap/cmd"

func main() {
	cmd.Execute()
}
