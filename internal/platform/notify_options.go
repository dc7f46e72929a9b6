package platform

import "time"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName identifies the sender to the notification service.
	AppName string
	// IconPath, when non-empty, points to an image file the notification center
	// should display with the notification if supported by the platform.
	IconPath string
	// Timeout is how long the notification stays up. Zero lets the
	// platform decide.
	Timeout time.Duration
}

func (o Options) appName() string {
	if o.AppName == "" {
		return "Sketchboard"
	}
	return o.AppName
}
