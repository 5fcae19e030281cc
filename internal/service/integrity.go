package service

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type BackupInfo struct {
	Path      string    `json:"path"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// DoctorReport counts integrity problems in the stored records. Multiple
// open sessions are reported but never repaired: the data model permits
// them, the report just makes the looseness visible.
type DoctorReport struct {
	InvertedSessions       int `json:"inverted_sessions"`
	FinishedMissingOutcome int `json:"finished_missing_outcome"`
	OpenWithOutcome        int `json:"open_with_outcome"`
	OpenSessions           int `json:"open_sessions"`
	InvertedSleepNights    int `json:"inverted_sleep_nights"`
}

// RunDoctor scans sessions and sleep records for structural problems.
func RunDoctor(db *sql.DB) (DoctorReport, error) {
	report := DoctorReport{}

	checks := []struct {
		dest  *int
		query string
	}{
		{&report.InvertedSessions,
			`SELECT COUNT(*) FROM sessions WHERE end_time IS NOT NULL AND end_time <= start_time`},
		{&report.FinishedMissingOutcome,
			`SELECT COUNT(*) FROM sessions WHERE end_time IS NOT NULL AND (completion_status IS NULL OR energy_after IS NULL)`},
		{&report.OpenWithOutcome,
			`SELECT COUNT(*) FROM sessions WHERE end_time IS NULL AND (completion_status IS NOT NULL OR energy_after IS NOT NULL)`},
		{&report.OpenSessions,
			`SELECT COUNT(*) FROM sessions WHERE end_time IS NULL`},
		{&report.InvertedSleepNights,
			`SELECT COUNT(*) FROM sleep_nights WHERE sleep_end <= sleep_start`},
	}
	for _, check := range checks {
		if err := db.QueryRow(check.query).Scan(check.dest); err != nil {
			return DoctorReport{}, fmt.Errorf("doctor check: %w", err)
		}
	}
	return report, nil
}

// HasIssues reports whether any check found a structural problem. Open
// sessions by themselves are normal and not counted as an issue.
func (r DoctorReport) HasIssues() bool {
	return r.InvertedSessions > 0 || r.FinishedMissingOutcome > 0 || r.OpenWithOutcome > 0 || r.InvertedSleepNights > 0
}

func CreateBackup(dbPath, outPath string) (BackupInfo, error) {
	if strings.TrimSpace(dbPath) == "" {
		return BackupInfo{}, fmt.Errorf("db path is required")
	}
	if strings.TrimSpace(outPath) == "" {
		return BackupInfo{}, fmt.Errorf("backup output path is required")
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return BackupInfo{}, fmt.Errorf("create backup directory: %w", err)
	}
	if err := copyFile(dbPath, outPath); err != nil {
		return BackupInfo{}, err
	}
	checksum, err := fileSHA256(outPath)
	if err != nil {
		return BackupInfo{}, err
	}
	if err := os.WriteFile(outPath+".sha256", []byte(checksum+"\n"), 0o644); err != nil {
		return BackupInfo{}, fmt.Errorf("write checksum file: %w", err)
	}
	st, err := os.Stat(outPath)
	if err != nil {
		return BackupInfo{}, fmt.Errorf("stat backup: %w", err)
	}
	return BackupInfo{Path: outPath, Checksum: checksum, CreatedAt: st.ModTime(), SizeBytes: st.Size()}, nil
}

func RestoreBackup(backupPath, dbPath string, force bool) error {
	if strings.TrimSpace(backupPath) == "" || strings.TrimSpace(dbPath) == "" {
		return fmt.Errorf("backup path and db path are required")
	}
	if !force {
		if _, err := os.Stat(dbPath); err == nil {
			return fmt.Errorf("target db already exists; use --force to overwrite")
		}
	}
	checksumFile := backupPath + ".sha256"
	if expected, err := os.ReadFile(checksumFile); err == nil {
		actual, err := fileSHA256(backupPath)
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(expected)) != actual {
			return fmt.Errorf("backup checksum mismatch")
		}
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}
	return copyFile(backupPath, dbPath)
}

// ListBackups scans a directory for .db backups and their checksum files.
func ListBackups(dir string) ([]BackupInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backup directory: %w", err)
	}
	var items []BackupInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".db") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat backup %q: %w", path, err)
		}
		item := BackupInfo{Path: path, CreatedAt: info.ModTime(), SizeBytes: info.Size()}
		if sum, err := os.ReadFile(path + ".sha256"); err == nil {
			item.Checksum = strings.TrimSpace(string(sum))
		}
		items = append(items, item)
	}
	return items, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %q to %q: %w", src, dst, err)
	}
	return out.Sync()
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open file for checksum: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash file: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
