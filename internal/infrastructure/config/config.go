package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// TrackingSettings tunes queue math and the change-feed poller. Everything
// has a sane default so a bare environment still boots against local
// DynamoDB.
type TrackingSettings struct {
	// AverageBayMinutes is the flat per-vehicle slot used for waiting ETAs.
	AverageBayMinutes int `envconfig:"AVERAGE_BAY_MINUTES" default:"30"`

	// StreamPollInterval is how often each stream shard is polled.
	StreamPollInterval time.Duration `envconfig:"STREAM_POLL_INTERVAL" default:"2s"`

	// WashOrdersTable mirrors the repository's table so the feed tails the
	// right stream.
	WashOrdersTable string `envconfig:"WASH_ORDERS_TABLE" default:"wash_orders"`
}

func LoadTrackingSettings() (TrackingSettings, error) {
	var s TrackingSettings
	if err := envconfig.Process("", &s); err != nil {
		return TrackingSettings{}, err
	}
	return s, nil
}
