// Package decoders defines the feature-decoder sub-schema, the network stage
// between backbone features and the detection head. Decoder follows the
// one-of convention: Type names the active variant, all payloads allocated.
package decoders

// Decoder selects one feature-decoder variant by name.
type Decoder struct {
	Type     string   `yaml:"type" json:"type"`
	Identity Identity `yaml:"identity" json:"identity"`
	FPN      FPN      `yaml:"fpn" json:"fpn"`
	MRFM     MRFM     `yaml:"mrfm" json:"mrfm"`
}

// Identity passes backbone features through unchanged.
type Identity struct{}

// FPN configures a feature pyramid network decoder.
type FPN struct {
	NumFilters       int  `yaml:"num_filters" json:"num_filters"`
	UseSeparableConv bool `yaml:"use_separable_conv" json:"use_separable_conv"`
}

// MRFM configures a multi-resolution feature-map decoder. The two lists are
// parallel, one entry per output layer: an empty FMLFromLayer entry means the
// layer is synthesized rather than taken from the backbone, and a layer depth
// of -1 keeps the source layer's depth.
type MRFM struct {
	FMLFromLayer  []string `yaml:"fml_from_layer" json:"fml_from_layer"`
	FMLLayerDepth []int    `yaml:"fml_layer_depth" json:"fml_layer_depth"`
}

// DefaultDecoder returns a Decoder with all payloads at their defaults and no
// variant selected. List-valued fields are freshly allocated per call.
func DefaultDecoder() Decoder {
	return Decoder{
		Identity: Identity{},
		FPN:      FPN{NumFilters: 256},
		MRFM:     MRFM{},
	}
}
