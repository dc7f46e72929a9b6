//go:build linux

package platform

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Notify sends a desktop notification over the org.freedesktop.Notifications bus interface.
func Notify(title, body string, opts Options) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("connect session bus: %w", err)
	}
	defer conn.Close()

	timeout := int32(-1)
	if opts.Timeout > 0 {
		timeout = int32(opts.Timeout.Milliseconds())
	}
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		opts.appName(), uint32(0), opts.IconPath, title, body, []string{}, map[string]dbus.Variant{}, timeout)
	return call.Err
}
