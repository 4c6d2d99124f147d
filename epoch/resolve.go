// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package epoch

import (
	"time"
)

const (
	// MinSeconds is the earliest supported instant, -262143-01-01
	// 00:00:00 UTC, in seconds since the epoch.
	MinSeconds = -8334601315200

	// MaxSeconds is the latest supported instant, +262142-12-31
	// 23:59:59 UTC, in seconds since the epoch.
	MaxSeconds = 8210266876799
)

// Zone supplies the location used for local renderings.
type Zone interface {
	Location() *time.Location
}

type systemZone struct{}

// Location returns the process wide local timezone.
func (systemZone) Location() *time.Location {
	return time.Local
}

// SystemZone resolves to the host's configured timezone.
var SystemZone Zone = systemZone{}

type fixedZone struct {
	loc *time.Location
}

func (z fixedZone) Location() *time.Location {
	return z.loc
}

// FixedZone returns a Zone that always uses the given name and offset in
// seconds east of UTC.
func FixedZone(name string, offset int) Zone {
	return fixedZone{loc: time.FixedZone(name, offset)}
}

// DateTime is a single instant carried both in UTC and in a local zone.
type DateTime struct {
	Seconds int64     // Seconds since the epoch
	UTC     time.Time // Instant in UTC
	Local   time.Time // Same instant in the resolver's zone
}

// Resolver turns seconds since the epoch into a DateTime.
type Resolver struct {
	zone Zone
}

// NewResolver returns a Resolver that renders local times in zone.  A nil
// zone selects SystemZone.
func NewResolver(zone Zone) *Resolver {
	if zone == nil {
		zone = SystemZone
	}
	return &Resolver{zone: zone}
}

// Resolve validates seconds against [MinSeconds, MaxSeconds] and returns the
// corresponding DateTime.  Out of range values yield a *RangeError.
func (r *Resolver) Resolve(seconds int64) (*DateTime, error) {
	if seconds < MinSeconds || seconds > MaxSeconds {
		return nil, &RangeError{Seconds: seconds}
	}

	utc := time.Unix(seconds, 0).UTC()
	return &DateTime{
		Seconds: seconds,
		UTC:     utc,
		Local:   utc.In(r.zone.Location()),
	}, nil
}
