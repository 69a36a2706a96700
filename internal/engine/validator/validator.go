// Package validator turns raw build parameters into a validated BuildRequest.
package validator

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/buildfy/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validator checks raw build parameters against the filesystem and the target platform.
type Validator struct {
	platform domain.Platform
}

// New creates a Validator for the given platform.
func New(platform domain.Platform) *Validator {
	return &Validator{platform: platform}
}

// Platform returns the platform requests are validated for.
func (v *Validator) Platform() domain.Platform {
	return v.platform
}

// Validate runs the checks in order and stops at the first failure.
// The only side effect is the creation of the output directory tree.
func (v *Validator) Validate(raw domain.RawInput) (domain.BuildRequest, error) {
	source, err := checkSource(raw.Source)
	if err != nil {
		return domain.BuildRequest{}, err
	}

	name := resolveName(raw.Name, source)
	if name == "" {
		return domain.BuildRequest{}, domain.ErrNameRequired
	}

	icon, err := v.checkIcon(raw.Icon)
	if err != nil {
		return domain.BuildRequest{}, err
	}

	outDir, err := ensureOutputDir(raw.OutputDir)
	if err != nil {
		return domain.BuildRequest{}, err
	}

	req := domain.BuildRequest{
		Source:    source,
		Name:      name,
		Icon:      icon,
		OutputDir: outDir,
		OneFile:   raw.OneFile,
		Windowed:  raw.Windowed,
		Clean:     raw.Clean,
		Platform:  v.platform,
	}
	if v.platform == domain.PlatformMacOS {
		req.BundleID = strings.TrimSpace(raw.BundleID)
	}

	return req, nil
}

func checkSource(raw string) (string, error) {
	source := strings.TrimSpace(raw)
	if source == "" {
		return "", domain.ErrSourceRequired
	}

	info, err := os.Stat(source)
	if err != nil || !info.Mode().IsRegular() {
		return "", zerr.With(domain.ErrSourceNotFound, "path", source)
	}

	if !strings.EqualFold(filepath.Ext(source), ".py") {
		return "", zerr.With(domain.ErrSourceNotPython, "path", source)
	}

	return source, nil
}

// resolveName falls back to the source base name without its extension.
func resolveName(raw, source string) string {
	if name := strings.TrimSpace(raw); name != "" {
		return name
	}
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (v *Validator) checkIcon(raw string) (string, error) {
	icon := strings.TrimSpace(raw)
	if icon == "" {
		return "", nil
	}

	if ext := v.platform.IconExtension(); ext != "" && !strings.EqualFold(filepath.Ext(icon), ext) {
		if v.platform == domain.PlatformWindows {
			return "", zerr.With(domain.ErrIconNotICO, "path", icon)
		}
		return "", zerr.With(domain.ErrIconNotICNS, "path", icon)
	}

	info, err := os.Stat(icon)
	if err != nil || !info.Mode().IsRegular() {
		return "", zerr.With(domain.ErrIconNotFound, "path", icon)
	}

	return icon, nil
}

// ensureOutputDir creates dir together with its dist and build subdirectories.
func ensureOutputDir(raw string) (string, error) {
	dir := strings.TrimSpace(raw)
	if dir == "" {
		return "", nil
	}

	for _, path := range []string{dir, domain.DistPath(dir), domain.WorkPath(dir)} {
		if err := os.MkdirAll(path, domain.DirPerm); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrOutputDirCreateFailed.Error()), "path", path)
		}
	}

	return dir, nil
}
