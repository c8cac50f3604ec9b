package model

import "time"

// Project describes where release announcements live and how they are cached.
type Project struct {
	Author         string
	Repo           string
	GitHubURL      string
	APIURL         string
	KeyPrefix      string
	DBPath         string
	HTTPTimeout    time.Duration
	MaxRetries     int
	PersistOnFetch bool
	LogLevel       string
}
