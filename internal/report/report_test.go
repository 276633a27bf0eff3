package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() {
	// Stable output for substring assertions.
	color.NoColor = true
}

func TestPrintArtifacts(t *testing.T) {
	sum := &Summary{
		BinaryPath: "/usr/local/bin/arctis-chatmix",
		UnitPath:   "/etc/systemd/system/arctis-chatmix.service",
		RulesPath:  "/etc/udev/rules.d/99-arctis-chatmix.rules",
	}
	var out bytes.Buffer
	sum.Print(&out, "--system", "arctis-chatmix.service")

	text := out.String()
	for _, want := range []string{
		"Installation complete.",
		"/usr/local/bin/arctis-chatmix",
		"/etc/systemd/system/arctis-chatmix.service",
		"/etc/udev/rules.d/99-arctis-chatmix.rules",
		"systemctl --system status arctis-chatmix.service",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("missing %q in output:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Warnings:") {
		t.Errorf("unexpected warnings section:\n%s", text)
	}
}

func TestPrintWarnings(t *testing.T) {
	sum := &Summary{BinaryPath: "/home/tester/.local/bin/arctis-chatmix"}
	sum.Warn("udev rule reload failed: exit status 1", "run manually: sudo udevadm control --reload-rules")
	sum.Warn("resolve current user: no user database", "")

	var out bytes.Buffer
	sum.Print(&out, "--user", "arctis-chatmix.service")

	text := out.String()
	if !strings.Contains(text, "Warnings:") {
		t.Fatalf("expected warnings section:\n%s", text)
	}
	if !strings.Contains(text, "- udev rule reload failed") {
		t.Errorf("missing first warning:\n%s", text)
	}
	if !strings.Contains(text, "run manually: sudo udevadm control --reload-rules") {
		t.Errorf("missing remedy:\n%s", text)
	}
	if !strings.Contains(text, "- resolve current user") {
		t.Errorf("missing remedy-less warning:\n%s", text)
	}
}

func TestPrintSkipsEmptyPaths(t *testing.T) {
	sum := &Summary{BinaryPath: "/usr/local/bin/arctis-chatmix"}
	var out bytes.Buffer
	sum.Print(&out, "--system", "arctis-chatmix.service")

	if strings.Contains(out.String(), "installed rules") {
		t.Errorf("rules line must be omitted when not installed:\n%s", out.String())
	}
	if strings.Contains(out.String(), "installed unit") {
		t.Errorf("unit line must be omitted when not installed:\n%s", out.String())
	}
}
