// Package binary provides functionality for downloading and installing
// the Bee release binary that beeget manages.
//
// # Pipeline
//
// An install is a linear pipeline with one network fetch:
//
//  1. Check the platform pair against the supported-combination set
//  2. Resolve the newest published release from the release index
//  3. Download the matching asset to a scratch directory
//  4. Locate the single executable payload (raw binary, tar.gz, or zip)
//  5. Copy it into the per-user bin directory and mark it executable
//
// Scratch artifacts are removed on every exit path; only the installed
// executable survives a successful run, and nothing survives a failed one.
//
// # Usage
//
//	info, err := platform.NewDetector().Detect(ctx)
//	if err != nil {
//	    return err
//	}
//
//	opts := binary.Options{Platform: info}
//	mgr, err := binary.NewManager(opts, logger)
//	if err != nil {
//	    return err
//	}
//
//	result, err := mgr.Install(ctx, opts)
//
// # Architecture
//
// The package is organized into several components:
//   - Manager: orchestration of resolve, download, extract, install
//   - Downloader: single-attempt HTTP download with temp-file atomicity
//   - Extractor: executable payload location (raw, tar.gz, zip)
//   - Installer: destination resolution and idempotent placement
//
// Failures carry a Kind naming the stage that produced them, which the
// CLI maps to distinct exit codes.
package binary
