package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct{}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{}
}

// Detect performs platform detection and returns platform information.
// It uses runtime.GOOS and runtime.GOARCH for OS and architecture,
// and gopsutil for Linux distribution details.
//
// The detected pair is checked against the supported-combination set
// before returning, so callers never proceed to network access with a
// platform that has no published binary.
//
// On Linux, if gopsutil fails to detect the distribution, it sets
// distro fields to empty strings and continues (graceful fallback).
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	info := &Info{
		OS:      runtime.GOOS,
		ArchRaw: runtime.GOARCH,
	}

	osName, err := NormalizeOS(runtime.GOOS)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	info.OS = osName

	arch, err := NormalizeArch(runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	info.Arch = arch

	if !Supported(info.OS, info.Arch) {
		return nil, fmt.Errorf("no published binary for platform %s", info.Key())
	}

	// Detect Linux distribution details using gopsutil (Linux only)
	if info.IsLinux() {
		platform, family, version, err := host.PlatformInformationWithContext(ctx)
		if err != nil {
			// Check if context was cancelled - this is a hard failure
			if ctx.Err() != nil {
				return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
			}
			// Graceful fallback for detection failures only
			// Asset selection needs OS/arch only, distro is informational
			return info, nil
		}

		platform = normalizePlatform(platform)
		family = mapFamily(family)
		version = normalizePlatform(version)

		// Only set fields if we got valid data
		if platform != "" {
			info.Platform = platform
			info.Family = family
			info.Version = version
		}
	}

	return info, nil
}

// Override returns an Info for an explicitly requested (os, arch) pair,
// bypassing host detection. Used by the --os/--arch flags.
func Override(osName, arch string) (*Info, error) {
	info := &Info{ArchRaw: arch}

	normalized, err := NormalizeOS(osName)
	if err != nil {
		return nil, err
	}
	info.OS = normalized

	normalizedArch, err := NormalizeArch(arch)
	if err != nil {
		return nil, err
	}
	info.Arch = normalizedArch

	if !Supported(info.OS, info.Arch) {
		return nil, fmt.Errorf("no published binary for platform %s", info.Key())
	}

	return info, nil
}
