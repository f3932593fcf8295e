package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "mkaudit.dev/pkg/mkaudit/internal/model"
)

// LatestReport is the name of the report that always mirrors the last session.
const LatestReport = "latest"

// ErrReportNotFound is returned when the requested report does not exist.
var ErrReportNotFound = errors.New("report not found")

// ReportStore persists audit reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.AuditReport) (m.Path, error)
	LoadReport(dir m.Path, name string) (m.AuditReport, error)
}

// YAMLReportStore keeps one YAML document per audit session.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes the report as <session>.yaml and refreshes latest.yaml.
// It returns the path of the session file.
func (s *YAMLReportStore) SaveReport(dir m.Path, report m.AuditReport) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports dir", "dir", dir, "error", err)
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	name := report.SessionID
	if name == "" {
		name = LatestReport
	}

	path := filepath.Join(string(dir), name+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("write report: %w", err)
	}

	if name != LatestReport {
		latest := filepath.Join(string(dir), LatestReport+".yaml")
		if err := os.WriteFile(latest, data, 0o600); err != nil {
			slog.Error("Failed to write latest report", "path", latest, "error", err)
			return "", fmt.Errorf("write latest report: %w", err)
		}
	}

	slog.Debug("Saved report", "path", path, "results", len(report.Results))

	return m.Path(path), nil
}

// LoadReport reads the named report; an empty name loads the latest one.
func (s *YAMLReportStore) LoadReport(dir m.Path, name string) (m.AuditReport, error) {
	if name == "" {
		name = LatestReport
	}

	path := filepath.Join(string(dir), name+".yaml")

	// #nosec G304 - reports live in the configured output directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.AuditReport{}, fmt.Errorf("%w: %s", ErrReportNotFound, path)
		}

		return m.AuditReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.AuditReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.AuditReport{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return report, nil
}
