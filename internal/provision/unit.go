package provision

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/arctis-tools/chatmixctl/internal/messages"
	"github.com/arctis-tools/chatmixctl/internal/scope"
)

// unitTemplate is the managed service unit. Only the start command path and
// the activation target vary per scope; everything else is fixed. The file is
// rebuilt from this template on every run and overwrites any prior version.
const unitTemplate = `[Unit]
Description=SteelSeries Arctis Nova 7 ChatMix controller
After=sound.target

[Service]
ExecStart={{.ExecStart}}
Environment=RUST_LOG=info
Restart=on-failure
RestartSec=5

[Install]
WantedBy={{.Target}}
`

var unitTmpl = template.Must(template.New("unit").Parse(unitTemplate))

// RenderUnit renders the service unit descriptor for the given profile.
// Rendering is deterministic, so re-runs produce byte-identical files.
func RenderUnit(prof scope.Profile) (string, error) {
	var sb strings.Builder
	data := struct {
		ExecStart string
		Target    string
	}{
		ExecStart: prof.BinaryPath(),
		Target:    prof.Target,
	}
	if err := unitTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf(messages.ProvisionRenderUnitFmt, err)
	}
	return sb.String(), nil
}
