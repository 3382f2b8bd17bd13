package config

import (
	"os"

	"github.com/bsthun/gut"
	"github.com/scoutsheirbrug/attest-api/common"
	"github.com/scoutsheirbrug/attest-api/type/shared"
	"gopkg.in/yaml.v3"
)

func LoadConfig(path string) {
	config := new(shared.Config)

	yml, readErr := os.ReadFile(path)

	if readErr != nil {
		gut.Fatal("Failed to read "+path, readErr)
	}

	if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
		gut.Fatal("Failed to unmarshal "+path, unmarshalErr)
	}

	if validateErr := gut.Validate(config); validateErr != nil {
		gut.Fatal("Invalid "+path, validateErr)
	}

	common.Config = config
}
