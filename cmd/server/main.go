package main

import "osgb/internal/app/server"

func main() {
	server.Run()
}
