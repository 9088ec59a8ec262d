package main

import "filmio-backend/internal/app"

func main() {
	app.Run()
}
