package domain

import (
	"runtime"
	"strings"
)

// Platform identifies the operating system a build is validated and packaged for.
type Platform uint8

const (
	// PlatformOther covers every host that is neither Windows nor macOS.
	PlatformOther Platform = iota
	// PlatformWindows is a Windows host producing .exe artifacts.
	PlatformWindows
	// PlatformMacOS is a macOS host producing .app bundles.
	PlatformMacOS
)

// PlatformFromGOOS maps a GOOS value to a Platform.
func PlatformFromGOOS(goos string) Platform {
	switch goos {
	case "windows":
		return PlatformWindows
	case "darwin":
		return PlatformMacOS
	default:
		return PlatformOther
	}
}

// HostPlatform returns the Platform of the running process.
func HostPlatform() Platform {
	return PlatformFromGOOS(runtime.GOOS)
}

// Name returns the human-readable operating system name.
func (p Platform) Name() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformMacOS:
		return "macOS"
	default:
		return OSName(runtime.GOOS)
	}
}

var osNames = map[string]string{
	"darwin":    "macOS",
	"dragonfly": "DragonFly",
	"freebsd":   "FreeBSD",
	"netbsd":    "NetBSD",
	"openbsd":   "OpenBSD",
	"illumos":   "illumos",
	"aix":       "AIX",
	"js":        "JS",
	"wasip1":    "WASI",
}

// OSName returns the display name of a GOOS value, e.g. "Linux" for "linux".
func OSName(goos string) string {
	if name, ok := osNames[goos]; ok {
		return name
	}
	if goos == "" {
		return goos
	}
	return strings.ToUpper(goos[:1]) + goos[1:]
}

// IconExtension returns the icon extension required on this platform,
// or an empty string when any extension is accepted.
func (p Platform) IconExtension() string {
	switch p {
	case PlatformWindows:
		return ".ico"
	case PlatformMacOS:
		return ".icns"
	default:
		return ""
	}
}

// TargetLabel names the kind of artifact the packaging tool produces.
func (p Platform) TargetLabel() string {
	switch p {
	case PlatformWindows:
		return ".exe"
	case PlatformMacOS:
		return ".app"
	default:
		return "binary"
	}
}

// BuildLabel is the idle label of the build trigger.
func (p Platform) BuildLabel() string {
	switch p {
	case PlatformWindows:
		return "Build .exe with PyInstaller"
	case PlatformMacOS:
		return "Build .app with PyInstaller"
	default:
		return "Build executable with PyInstaller"
	}
}

// Footer describes the detected host and its target artifact.
func (p Platform) Footer() string {
	return "Detected OS: " + p.Name() + " — Target: " + p.TargetLabel()
}

// DefaultPython returns the interpreter used to run the packaging tool.
func (p Platform) DefaultPython() string {
	if p == PlatformWindows {
		return "python"
	}
	return "python3"
}

// BusyLabel is the label of the build trigger while a session is active.
const BusyLabel = "Building..."
