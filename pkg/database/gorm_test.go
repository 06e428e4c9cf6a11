package database

import "testing"

func TestNewGormDBFromDSNRejectsMalformedDSN(t *testing.T) {
	db, err := NewGormDBFromDSN("://not-a-dsn")
	if err == nil {
		t.Fatal("expected an error for a malformed DSN")
	}
	if db != nil {
		t.Errorf("db = %v, want nil on error", db)
	}
}
