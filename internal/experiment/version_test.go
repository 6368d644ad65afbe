package experiment

import "testing"

func TestCheckSchemaVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{"", false},      // unversioned documents are accepted
		{"1.0.0", false}, // exact match
		{"1.0.1", true},  // newer patch than supported
		{"1.1.0", true},  // newer minor than supported
		{"0.9.0", true},  // different major
		{"2.0.0", true},  // different major
		{"not-a-version", true},
	}

	for _, tt := range tests {
		name := tt.version
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			err := CheckSchemaVersion(tt.version)
			if tt.wantErr && err == nil {
				t.Errorf("CheckSchemaVersion(%q) succeeded, want error", tt.version)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("CheckSchemaVersion(%q): %v", tt.version, err)
			}
		})
	}
}
