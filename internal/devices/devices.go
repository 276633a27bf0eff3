// Package devices holds the fixed table of supported Arctis Nova 7 hardware.
package devices

// VendorID is the SteelSeries USB vendor id shared by every supported headset.
const VendorID = "1038"

// Device describes one supported headset variant.
type Device struct {
	ProductID string
	Name      string
}

// Supported returns the ordered list of supported product ids. The order is
// stable: rendered udev rules and trigger calls follow it.
func Supported() []Device {
	return []Device{
		{ProductID: "2202", Name: "Arctis Nova 7"},
		{ProductID: "22a1", Name: "Arctis Nova 7 Gen 2"},
		{ProductID: "227e", Name: "Arctis Nova 7 Wireless Gen 2"},
		{ProductID: "2206", Name: "Arctis Nova 7x"},
		{ProductID: "2258", Name: "Arctis Nova 7x v2"},
		{ProductID: "229e", Name: "Arctis Nova 7x v2"},
		{ProductID: "223a", Name: "Arctis Nova 7 Diablo IV"},
		{ProductID: "22a9", Name: "Arctis Nova 7 Diablo IV"},
		{ProductID: "227a", Name: "Arctis Nova 7 WoW Edition"},
	}
}
