// Package composer maps a validated BuildRequest to the packaging tool's command line.
package composer

import (
	"path/filepath"

	"go.trai.ch/buildfy/internal/core/domain"
)

// Compose builds the command line for req. The source path is always the
// first argument after the tool prefix and the dist/work paths are emitted together.
func Compose(tool []string, req domain.BuildRequest) domain.CommandLine {
	args := make([]string, 0, 16)
	args = append(args, req.Source)

	if req.Clean {
		args = append(args, "--clean")
	}
	if req.OneFile {
		args = append(args, "--onefile")
	}
	if req.Windowed {
		args = append(args, "--windowed")
	}

	args = append(args, "--name", req.Name)

	if req.Icon != "" {
		args = append(args, "--icon", req.Icon)
	}
	if req.Platform == domain.PlatformMacOS && req.BundleID != "" {
		args = append(args, "--osx-bundle-identifier", req.BundleID)
	}
	if req.OutputDir != "" {
		args = append(args,
			"--distpath", domain.DistPath(req.OutputDir),
			"--workpath", domain.WorkPath(req.OutputDir),
		)
	}

	return domain.CommandLine{
		Tool: append([]string(nil), tool...),
		Args: args,
	}
}

// ArtifactHint guesses where the packaging tool placed the artifact.
// The result is not checked against the filesystem.
func ArtifactHint(req domain.BuildRequest, cwd string) string {
	base := req.OutputDir
	if base == "" {
		base = cwd
	}
	dist := domain.DistPath(base)

	switch req.Platform {
	case domain.PlatformWindows:
		if req.OneFile {
			return "Artifact: " + filepath.Join(dist, req.Name+".exe")
		}
		return "Artifact: " + filepath.Join(dist, req.Name, req.Name+".exe")
	case domain.PlatformMacOS:
		return "Artifact: " + filepath.Join(dist, req.Name+".app")
	default:
		return "Artifacts in: " + dist
	}
}
