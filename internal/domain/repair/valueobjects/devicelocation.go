package valueobjects

import "fmt"

// DeviceLocation records where a rejected device ended up.
type DeviceLocation string

const (
	LocationAtShop       DeviceLocation = "at_shop"
	LocationWithCustomer DeviceLocation = "with_customer"
)

func (dl DeviceLocation) String() string {
	return string(dl)
}

func (dl DeviceLocation) IsValid() bool {
	return dl == LocationAtShop || dl == LocationWithCustomer
}

func NewDeviceLocation(s string) (DeviceLocation, error) {
	dl := DeviceLocation(s)
	if !dl.IsValid() {
		return "", fmt.Errorf("invalid device location: %s", s)
	}
	return dl, nil
}
