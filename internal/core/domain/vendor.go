package domain

const unknownDescription = "Unknown"

// Vendor selects a fabrication-house-specific output profile.
// The tag is handed to KiKit's fab command unchanged; unknown tags are
// allowed through so new KiKit profiles work without a kifab release.
type Vendor string

// Vendors with known KiKit fab profiles.
const (
	// VendorJLCPCB is the JLCPCB fabrication profile.
	VendorJLCPCB Vendor = "jlcpcb"

	// VendorPCBWay is the PCBWay fabrication profile.
	VendorPCBWay Vendor = "pcbway"

	// VendorOSHPark is the OSH Park fabrication profile.
	VendorOSHPark Vendor = "oshpark"
)

// IsKnown returns true if the vendor has a known KiKit profile.
func (v Vendor) IsKnown() bool {
	switch v {
	case VendorJLCPCB, VendorPCBWay, VendorOSHPark:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (v Vendor) String() string {
	return string(v)
}

// Description returns a human-readable description of the vendor.
func (v Vendor) Description() string {
	switch v {
	case VendorJLCPCB:
		return "JLCPCB (gerbers + assembly files)"
	case VendorPCBWay:
		return "PCBWay (gerbers + assembly files)"
	case VendorOSHPark:
		return "OSH Park (gerbers)"
	default:
		return unknownDescription
	}
}

// AllVendors returns the vendors with known KiKit profiles.
func AllVendors() []Vendor {
	return []Vendor{
		VendorJLCPCB,
		VendorPCBWay,
		VendorOSHPark,
	}
}
