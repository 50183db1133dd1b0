package main

import "github.com/KimNorgaard/go-recipe/internal/cli"

func main() {
	cli.Execute()
}
