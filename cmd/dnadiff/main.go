// cmd/dnadiff/main.go
package main

import (
	"dnadiff/internal/app"
	"dnadiff/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
