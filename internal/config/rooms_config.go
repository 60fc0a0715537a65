package config

type RoomsConfig interface {
	// GetRoomsAPIBase is the video-room provider's API base URL; "" disables
	// room provisioning
	GetRoomsAPIBase() string
	GetRoomsAPIKey() string
}

type Rooms struct{}

var _ RoomsConfig = Rooms{}

func (Rooms) GetRoomsAPIBase() string {
	return GetEnv("ROOMS_API_BASE", "")
}

func (Rooms) GetRoomsAPIKey() string {
	return GetEnv("ROOMS_API_KEY", "")
}
