package model

// DeviceType is a broad asset category for DDI provisioning. The constant
// set below is the closed label list offered to the remote classifier;
// dictionary overlays may introduce additional deterministic categories,
// which is why the type is not validated on assignment.
type DeviceType string

const (
	DeviceSwitch       DeviceType = "switch"
	DeviceRouter       DeviceType = "router"
	DeviceFirewall     DeviceType = "firewall"
	DeviceWirelessAP   DeviceType = "wireless_ap"
	DevicePrinter      DeviceType = "printer"
	DeviceServer       DeviceType = "server"
	DeviceDesktop      DeviceType = "desktop"
	DeviceLaptop       DeviceType = "laptop"
	DeviceLoadBalancer DeviceType = "load_balancer"
	DeviceNAS          DeviceType = "nas"
	DeviceCamera       DeviceType = "camera"
	DevicePhone        DeviceType = "phone"
	DeviceIoT          DeviceType = "iot"
	DeviceUnknown      DeviceType = "unknown"
)

// DeviceTypeLabels returns the allowed labels, in declaration order,
// as plain strings for the classification request.
func DeviceTypeLabels() []string {
	types := []DeviceType{
		DeviceSwitch, DeviceRouter, DeviceFirewall, DeviceWirelessAP,
		DevicePrinter, DeviceServer, DeviceDesktop, DeviceLaptop,
		DeviceLoadBalancer, DeviceNAS, DeviceCamera, DevicePhone,
		DeviceIoT, DeviceUnknown,
	}
	labels := make([]string, len(types))
	for i, t := range types {
		labels[i] = string(t)
	}
	return labels
}
