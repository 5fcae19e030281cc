package service_test

import (
	"testing"

	"github.com/fikryfauzn/icarus/internal/service"
)

func TestConfigSetGetList(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	if _, ok, err := service.GetConfig(db, service.ConfigDefaultDomain); err != nil || ok {
		t.Fatalf("expected unset key, ok=%v err=%v", ok, err)
	}

	if err := service.SetConfig(db, service.ConfigDefaultDomain, "Work"); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if err := service.SetConfig(db, service.ConfigDefaultDomain, "College"); err != nil {
		t.Fatalf("overwrite config: %v", err)
	}
	if err := service.SetConfig(db, service.ConfigDefaultWorkType, "Deep"); err != nil {
		t.Fatalf("set second key: %v", err)
	}

	value, ok, err := service.GetConfig(db, service.ConfigDefaultDomain)
	if err != nil || !ok {
		t.Fatalf("get config: ok=%v err=%v", ok, err)
	}
	if value != "College" {
		t.Fatalf("expected last write to win, got %q", value)
	}

	values, err := service.ListConfig(db)
	if err != nil {
		t.Fatalf("list config: %v", err)
	}
	if len(values) != 2 || values[service.ConfigDefaultWorkType] != "Deep" {
		t.Fatalf("unexpected config map: %v", values)
	}
}
