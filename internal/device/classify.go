package device

import (
	"encoding/hex"
	"strings"
)

type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

const (
	vendorMicrosoft = 0x045E
	vendorSony      = 0x054C
	vendorNintendo  = 0x057E
)

var knownDevices = map[deviceKey]Gamepad{
	// Microsoft Xbox controllers
	{vendorMicrosoft, 0x028E}: GamepadXbox, // Xbox 360
	{vendorMicrosoft, 0x02FF}: GamepadXbox, // Xbox One
	{vendorMicrosoft, 0x02EA}: GamepadXbox, // Xbox One S
	{vendorMicrosoft, 0x0B12}: GamepadXbox, // Xbox Series X|S
	{vendorMicrosoft, 0x0B13}: GamepadXbox, // Xbox Series X|S (wireless)
	// Sony PlayStation controllers
	{vendorSony, 0x0CE6}: GamepadDualSense,  // DualSense
	{vendorSony, 0x0DF2}: GamepadDualSense,  // DualSense Edge
	{vendorSony, 0x09CC}: GamepadDualShock4, // DualShock 4 v2
	{vendorSony, 0x05C4}: GamepadDualShock4, // DualShock 4 v1
	// Nintendo
	{vendorNintendo, 0x2009}: GamepadNintendo, // Switch Pro Controller
	{vendorNintendo, 0x2006}: GamepadNintendo, // Joy-Con (L)
	{vendorNintendo, 0x2007}: GamepadNintendo, // Joy-Con (R)
}

// Classify returns the gamepad kind for a USB vendor/product pair.
// Unlisted products from a known vendor take the vendor's kind; everything
// else is GamepadOther.
func Classify(vendorID, productID uint16) Gamepad {
	if g, ok := knownDevices[deviceKey{vendorID, productID}]; ok {
		return g
	}
	switch vendorID {
	case vendorMicrosoft:
		return GamepadXbox
	case vendorSony:
		return GamepadDualShock4
	case vendorNintendo:
		return GamepadNintendo
	}
	return GamepadOther
}

// ClassifyName guesses the gamepad kind from a driver-reported name.
func ClassifyName(name string) Gamepad {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "dualsense"), strings.Contains(n, "ps5"):
		return GamepadDualSense
	case strings.Contains(n, "dualshock"), strings.Contains(n, "ps4"),
		strings.Contains(n, "playstation"):
		return GamepadDualShock4
	case strings.Contains(n, "nintendo"), strings.Contains(n, "switch"),
		strings.Contains(n, "joy-con"), strings.Contains(n, "joycon"):
		return GamepadNintendo
	case strings.Contains(n, "xbox"), strings.Contains(n, "x-box"),
		strings.Contains(n, "xinput"):
		return GamepadXbox
	default:
		return GamepadOther
	}
}

// ParseSDLGUID extracts the USB vendor and product IDs from an SDL joystick
// GUID string (32 hex digits, little-endian 16-bit fields). ok is false when
// the GUID does not carry USB IDs.
func ParseSDLGUID(guid string) (vendorID, productID uint16, ok bool) {
	if len(guid) != 32 {
		return 0, 0, false
	}
	raw, err := hex.DecodeString(guid)
	if err != nil {
		return 0, 0, false
	}
	vendorID = uint16(raw[4]) | uint16(raw[5])<<8
	productID = uint16(raw[8]) | uint16(raw[9])<<8
	if vendorID == 0 || raw[6] != 0 || raw[7] != 0 {
		return 0, 0, false
	}
	return vendorID, productID, true
}

// ClassifyGUID classifies by SDL GUID, falling back to the device name.
func ClassifyGUID(guid, name string) Gamepad {
	if v, p, ok := ParseSDLGUID(guid); ok {
		if g := Classify(v, p); g != GamepadOther {
			return g
		}
	}
	return ClassifyName(name)
}
