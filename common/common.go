package common

import (
	"github.com/scoutsheirbrug/attest-api/internal/bulk"
	"github.com/scoutsheirbrug/attest-api/internal/renderer"
	"github.com/scoutsheirbrug/attest-api/type/shared"
)

var Config *shared.Config
var Renderer *renderer.Renderer
var Previews *renderer.PreviewStore
var Bulk *bulk.Builder
