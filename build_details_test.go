package yamldb

import "testing"

func TestVersion(t *testing.T) {
	if Version() == "" {
		t.Error("Version() should never be empty")
	}
	if Version() != "dev" {
		t.Errorf("development builds should report 'dev', got %q", Version())
	}
}
