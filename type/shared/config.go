package shared

type OrganizationConfig struct {
	Name          *string `yaml:"name" validate:"required"`
	Address       *string `yaml:"address" validate:"required"`
	Contact       *string `yaml:"contact" validate:"required,email"`
	Place         *string `yaml:"place" validate:"required"`
	StampPath     *string `yaml:"stamp_path"`
	WatermarkPath *string `yaml:"watermark_path"`
}

type Config struct {
	Environment       *bool               `yaml:"environment" validate:"required"`
	Port              *string             `yaml:"port" validate:"required"`
	Cors              []*string           `yaml:"cors" validate:"required"`
	Organization      *OrganizationConfig `yaml:"organization" validate:"required"`
	VerifyHost        *string             `yaml:"verify_host"`
	BulkYear          *int                `yaml:"bulk_year"`
	PreviewDebounceMs *int                `yaml:"preview_debounce_ms"`
}
