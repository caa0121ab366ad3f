package main

import (
	"github.com/drxlabs/drx-backend/internal/server"
)

func main() {
	server.Init()
}
