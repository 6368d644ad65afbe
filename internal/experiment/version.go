package experiment

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/visionforge-labs/visionforge/internal/configs/core"
)

// CheckSchemaVersion reports whether an experiment document declaring the
// given schema version can be consumed by this build. An empty version is
// accepted (the document predates versioning). Compatible means same major
// version and not newer than core.SchemaVersion.
func CheckSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	declared, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("parsing schema_version %q: %w", version, err)
	}
	supported := semver.MustParse(core.SchemaVersion)

	if declared.Major() != supported.Major() {
		return fmt.Errorf("schema_version %s is incompatible with supported version %s", version, core.SchemaVersion)
	}
	if declared.GreaterThan(supported) {
		return fmt.Errorf("schema_version %s is newer than supported version %s", version, core.SchemaVersion)
	}
	return nil
}
