// Package backbones defines the backbone sub-schema.
//
// Backbone is a one-of record: the Type field names the active variant, but
// every variant payload is allocated so downstream code can read any of them
// directly. Adding a variant means adding a payload field and a default.
package backbones

// Backbone selects one backbone variant by name.
type Backbone struct {
	Type      string    `yaml:"type" json:"type"`
	MobileDet MobileDet `yaml:"mobiledet" json:"mobiledet"`
	ResNet    ResNet    `yaml:"resnet" json:"resnet"`
}

// MobileDet configures a MobileDet backbone.
type MobileDet struct {
	ModelID         string  `yaml:"model_id" json:"model_id"`
	FilterSizeScale float64 `yaml:"filter_size_scale" json:"filter_size_scale"`
}

// ResNet configures a ResNet backbone.
type ResNet struct {
	ModelID int `yaml:"model_id" json:"model_id"`
}

// DefaultBackbone returns a Backbone with all payloads at their defaults and
// no variant selected.
func DefaultBackbone() Backbone {
	return Backbone{
		MobileDet: DefaultMobileDet(),
		ResNet:    ResNet{ModelID: 50},
	}
}

// DefaultMobileDet returns the default MobileDet settings.
func DefaultMobileDet() MobileDet {
	return MobileDet{
		ModelID:         "MobileDetCPU",
		FilterSizeScale: 1.0,
	}
}
