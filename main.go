package main

import (
	"github.com/RaghavArora1163/Advanced-API/internal/config"
	"github.com/RaghavArora1163/Advanced-API/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
