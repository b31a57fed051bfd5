package main

import (
	"propertyHub/cmd/app"
)

func main() {
	app.GetApp().LetsGo()
}
