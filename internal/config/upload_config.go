package config

import "time"

type UploadConfig interface {
	// GetAPIBaseURL is the base URL the upload client submits to
	GetAPIBaseURL() string
	GetUploadPollInterval() time.Duration
	GetUploadPollTimeout() time.Duration
}

type Uploads struct{}

var _ UploadConfig = Uploads{}

func (Uploads) GetAPIBaseURL() string {
	return GetEnv("API_BASE_URL", "http://localhost:8080")
}

func (Uploads) GetUploadPollInterval() time.Duration {
	interval, err := time.ParseDuration(GetEnv("UPLOAD_POLL_INTERVAL", "2s"))
	if err != nil {
		return 2 * time.Second
	}
	return interval
}

func (Uploads) GetUploadPollTimeout() time.Duration {
	timeout, err := time.ParseDuration(GetEnv("UPLOAD_POLL_TIMEOUT", "10m"))
	if err != nil {
		return 10 * time.Minute
	}
	return timeout
}
