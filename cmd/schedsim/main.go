package main

import (
	"schedsim/service"
)

func main() {
	webService := service.NewService()
	webService.StartWebService()
}
