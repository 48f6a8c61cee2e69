// cmd/editreplay/main.go
package main

import (
	"editreplay/internal/app"
	"editreplay/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
