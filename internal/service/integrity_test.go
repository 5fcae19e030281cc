package service_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fikryfauzn/icarus/internal/model"
	"github.com/fikryfauzn/icarus/internal/service"
)

func TestRunDoctorCleanDatabase(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	seedManualSession(t, db, time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), 60, model.WorkTypeDeep)

	report, err := service.RunDoctor(db)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.HasIssues() {
		t.Fatalf("expected clean report, got %+v", report)
	}
}

func TestRunDoctorCountsOpenSessionsWithoutFlaggingThem(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	for _, activity := range []string{"first", "second"} {
		if _, err := service.StartSession(db, service.StartSessionInput{
			Domain: model.DomainWork, ProjectName: "p", ActivityDescription: activity,
			WorkType: model.WorkTypeDeep, EnergyBefore: 5, StressBefore: 5, ResistanceBefore: 3,
		}); err != nil {
			t.Fatalf("start session %s: %v", activity, err)
		}
	}

	report, err := service.RunDoctor(db)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.OpenSessions != 2 {
		t.Fatalf("expected 2 open sessions, got %d", report.OpenSessions)
	}
	if report.HasIssues() {
		t.Fatalf("open sessions alone are not an issue: %+v", report)
	}
}

func TestRunDoctorFlagsInvertedSessions(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	logged := seedManualSession(t, db, time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), 60, model.WorkTypeDeep)
	if _, err := db.Exec(`UPDATE sessions SET end_time = ? WHERE id = ?`,
		"2026-03-10T08:00:00", logged.ID); err != nil {
		t.Fatalf("corrupt session: %v", err)
	}

	report, err := service.RunDoctor(db)
	if err != nil {
		t.Fatalf("run doctor: %v", err)
	}
	if report.InvertedSessions != 1 {
		t.Fatalf("expected 1 inverted session, got %d", report.InvertedSessions)
	}
	if !report.HasIssues() {
		t.Fatalf("inverted session must count as an issue")
	}
}

func TestBackupCreateAndRestore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "icarus.db")
	if err := os.WriteFile(src, []byte("database bytes"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	out := filepath.Join(dir, "backups", "icarus-test.db")
	info, err := service.CreateBackup(src, out)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Checksum == "" || info.SizeBytes != int64(len("database bytes")) {
		t.Fatalf("unexpected backup info: %+v", info)
	}
	if _, err := os.Stat(out + ".sha256"); err != nil {
		t.Fatalf("expected checksum file: %v", err)
	}

	target := filepath.Join(dir, "restored.db")
	if err := service.RestoreBackup(out, target, false); err != nil {
		t.Fatalf("restore backup: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil || string(data) != "database bytes" {
		t.Fatalf("restored content mismatch: %q err=%v", data, err)
	}

	// A second restore to the same target needs force.
	if err := service.RestoreBackup(out, target, false); err == nil ||
		!strings.Contains(err.Error(), "use --force") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
	if err := service.RestoreBackup(out, target, true); err != nil {
		t.Fatalf("forced restore: %v", err)
	}
}

func TestRestoreBackupChecksumMismatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	backup := filepath.Join(dir, "icarus-test.db")
	if err := os.WriteFile(backup, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write backup: %v", err)
	}
	if err := os.WriteFile(backup+".sha256", []byte("deadbeef\n"), 0o644); err != nil {
		t.Fatalf("write checksum: %v", err)
	}

	err := service.RestoreBackup(backup, filepath.Join(dir, "restored.db"), false)
	if err == nil || !strings.Contains(err.Error(), "checksum mismatch") {
		t.Fatalf("expected checksum mismatch, got %v", err)
	}
}
