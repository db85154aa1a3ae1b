package platform

import "testing"

func TestNormalizeArch(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "amd64_passthrough", input: "amd64", want: "amd64"},
		{name: "x86_64_alias", input: "x86_64", want: "amd64"},
		{name: "arm64_passthrough", input: "arm64", want: "arm64"},
		{name: "aarch64_alias", input: "aarch64", want: "arm64"},
		{name: "uppercase", input: "X86_64", want: "amd64"},
		{name: "whitespace", input: " arm64 ", want: "arm64"},
		{name: "386_unsupported", input: "386", wantErr: true},
		{name: "armv7_unsupported", input: "arm", wantErr: true},
		{name: "riscv64_unsupported", input: "riscv64", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeArch(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NormalizeArch(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeOS(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "linux", input: "linux", want: "linux"},
		{name: "darwin", input: "darwin", want: "darwin"},
		{name: "macos_alias", input: "macos", want: "darwin"},
		{name: "windows", input: "windows", want: "windows"},
		{name: "win_alias", input: "win", want: "windows"},
		{name: "freebsd_unsupported", input: "freebsd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeOS(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NormalizeOS(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		os   string
		arch string
		want bool
	}{
		{"linux", "amd64", true},
		{"linux", "arm64", true},
		{"darwin", "amd64", true},
		{"darwin", "arm64", true},
		{"windows", "amd64", true},
		// Bee publishes no Windows arm64 build
		{"windows", "arm64", false},
		{"freebsd", "amd64", false},
		{"linux", "386", false},
	}

	for _, tt := range tests {
		if got := Supported(tt.os, tt.arch); got != tt.want {
			t.Errorf("Supported(%q, %q) = %v, want %v", tt.os, tt.arch, got, tt.want)
		}
	}
}

func TestMapFamily(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debian", FamilyDebian},
		{"ubuntu", FamilyDebian},
		{"rhel", FamilyRHEL},
		{"centos", FamilyRHEL},
		{"fedora", FamilyFedora},
		{"suse", FamilySUSE},
		{"arch", FamilyArch},
		{"alpine", FamilyAlpine},
		{"gentoo", FamilyGentoo},
		{"  Debian  ", FamilyDebian},
		{"slackware", FamilyUnknown},
		{"", FamilyUnknown},
	}

	for _, tt := range tests {
		if got := mapFamily(tt.input); got != tt.want {
			t.Errorf("mapFamily(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
