package main

import (
	"github.com/SABYA648/Mood-Bite/config"
	"github.com/SABYA648/Mood-Bite/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
