package main

import (
	"flag"

	"github.com/scoutsheirbrug/attest-api/api"
	"github.com/scoutsheirbrug/attest-api/common/config"
	"github.com/scoutsheirbrug/attest-api/common/render"
	"github.com/scoutsheirbrug/attest-api/common/util"
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to configuration file")
	flag.Parse()

	config.LoadConfig(*configPath)
	render.InitRenderer()
	util.StartPreviewCleanupJob()
	api.InitFiber()
}
