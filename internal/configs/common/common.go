// Package common holds sub-schemas shared across model families.
package common

// NormActivation groups the normalization and activation settings applied
// throughout a model's convolution blocks.
type NormActivation struct {
	Activation   string  `yaml:"activation" json:"activation"`
	UseSyncBN    bool    `yaml:"use_sync_bn" json:"use_sync_bn"`
	NormMomentum float64 `yaml:"norm_momentum" json:"norm_momentum"`
	NormEpsilon  float64 `yaml:"norm_epsilon" json:"norm_epsilon"`
}

// DefaultNormActivation returns the default normalization settings.
func DefaultNormActivation() NormActivation {
	return NormActivation{
		Activation:   "relu",
		UseSyncBN:    true,
		NormMomentum: 0.99,
		NormEpsilon:  0.001,
	}
}
