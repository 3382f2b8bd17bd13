package render

import (
	"log/slog"
	"os"
	"time"

	"github.com/bsthun/gut"
	"github.com/scoutsheirbrug/attest-api/common"
	"github.com/scoutsheirbrug/attest-api/internal/attest"
	"github.com/scoutsheirbrug/attest-api/internal/bulk"
	"github.com/scoutsheirbrug/attest-api/internal/renderer"
)

// InitRenderer builds the document pipeline from the loaded config and
// stores it on common, mirroring how the other process-wide collaborators
// are wired.
func InitRenderer() {
	orgConfig := common.Config.Organization

	org := attest.Organization{
		Name:      *orgConfig.Name,
		Address:   *orgConfig.Address,
		Contact:   *orgConfig.Contact,
		Place:     *orgConfig.Place,
		Stamp:     loadArtwork(orgConfig.StampPath, renderer.DefaultStamp()),
		Watermark: loadArtwork(orgConfig.WatermarkPath, renderer.DefaultWatermark()),
	}

	var opts []renderer.Option
	if common.Config.VerifyHost != nil && *common.Config.VerifyHost != "" {
		opts = append(opts, renderer.WithVerifyHost(*common.Config.VerifyHost))
	}

	delay := renderer.DefaultQuietPeriod
	if common.Config.PreviewDebounceMs != nil {
		delay = time.Duration(*common.Config.PreviewDebounceMs) * time.Millisecond
	}

	year := bulk.DefaultYear
	if common.Config.BulkYear != nil {
		year = *common.Config.BulkYear
	}

	common.Renderer = renderer.New(org, opts...)
	common.Previews = renderer.NewPreviewStore(common.Renderer, delay)
	common.Bulk = bulk.NewBuilder(common.Renderer, year)

	slog.Info("Renderer initialized",
		"organization", org.Name,
		"bulk_year", year,
		"preview_debounce", delay.String())
}

// loadArtwork reads a configured artwork file, falling back to the embedded
// default when no path is set. A configured but unreadable path is a fatal
// misconfiguration.
func loadArtwork(path *string, fallback []byte) []byte {
	if path == nil || *path == "" {
		return fallback
	}
	data, err := os.ReadFile(*path)
	if err != nil {
		gut.Fatal("Failed to read artwork "+*path, err)
	}
	return data
}
