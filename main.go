package main

import "github.com/inovacc/repogallery/cmd"

func main() {
	cmd.Execute()
}
