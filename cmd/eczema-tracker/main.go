package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2/log"
	"github.com/terraincognita07/eczema-tracker/internal/config"
)

var CLI struct {
	Config string `help:"YAML config file." type:"path" env:"CONFIG_FILE"`

	Serve  serveCmd  `cmd:"" help:"Run the journal server." default:"1"`
	Export exportCmd `cmd:"" help:"Export logged days as CSV or JSON."`
	Status statusCmd `cmd:"" help:"Print protocol progress."`
}

type appContext struct {
	cfg      config.Config
	location *time.Location
	stdout   io.Writer
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("eczema-tracker"),
		kong.Description("14-day eczema elimination protocol journal"),
		kong.UsageOnError(),
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	location, err := cfg.Location()
	if err != nil {
		log.Warnf("%v, falling back to UTC", err)
	}
	time.Local = location

	if err := ctx.Run(&appContext{cfg: cfg, location: location, stdout: os.Stdout}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
