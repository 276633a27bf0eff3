// Package udev provisions the device-permission rule for the supported
// headsets and asks the device manager to apply it to already-attached
// hardware.
package udev

import (
	"fmt"
	"strings"

	"github.com/arctis-tools/chatmixctl/internal/devices"
)

// RulesPath is the fixed system path of the managed rule file.
const RulesPath = "/etc/udev/rules.d/99-arctis-chatmix.rules"

// accessGroup is the fixed group granted access alongside the session-scoped
// uaccess tag.
const accessGroup = "audio"

const (
	usbRuleFmt    = `SUBSYSTEM=="usb", ATTRS{idVendor}=="%s", ATTRS{idProduct}=="%s", TAG+="uaccess", GROUP="%s", MODE="0660"`
	hidrawRuleFmt = `KERNEL=="hidraw*", SUBSYSTEM=="hidraw", ATTRS{idVendor}=="%s", ATTRS{idProduct}=="%s", TAG+="uaccess", GROUP="%s", MODE="0660"`
)

// RenderRules renders the complete rule file: a header plus, for every
// supported product id in order, one generic USB match and one hidraw
// subsystem match. The file is always written as a whole.
func RenderRules() string {
	var sb strings.Builder
	sb.WriteString("# Managed by chatmixctl. Grants access to supported Arctis Nova 7 headsets.\n")
	for _, dev := range devices.Supported() {
		sb.WriteString(fmt.Sprintf("\n# %s\n", dev.Name))
		sb.WriteString(fmt.Sprintf(usbRuleFmt+"\n", devices.VendorID, dev.ProductID, accessGroup))
		sb.WriteString(fmt.Sprintf(hidrawRuleFmt+"\n", devices.VendorID, dev.ProductID, accessGroup))
	}
	return sb.String()
}
