// Package version holds the registry of API versions served for the role
// resource and the transformations between their response shapes.
package version

import (
	"strings"
	"time"

	"github.com/99minutos/access-control/internal/core/domain"
)

// Version identifies an API version as it appears in the request path.
type Version string

const (
	V1 Version = "v1"
	V2 Version = "v2"
)

// Descriptor describes the lifecycle of one API version.
type Descriptor struct {
	Version      Version
	IsActive     bool
	DeprecatedAt *time.Time
	SunsetAt     *time.Time
}

// Registry is an ordered list of descriptors. Order is the source of truth
// for "latest", not a semantic comparison of version strings.
type Registry []Descriptor

// Default is the registry served by the API.
var Default = Registry{
	{Version: V1, IsActive: true},
	{Version: V2, IsActive: true},
}

// Lookup returns the descriptor registered for v.
func (r Registry) Lookup(v string) (Descriptor, bool) {
	for _, d := range r {
		if string(d.Version) == v {
			return d, true
		}
	}
	return Descriptor{}, false
}

// IsSupported reports whether v is registered and active.
func (r Registry) IsSupported(v string) bool {
	d, ok := r.Lookup(v)
	return ok && d.IsActive
}

// Supported lists the active versions in registry order.
func (r Registry) Supported() []Version {
	out := make([]Version, 0, len(r))
	for _, d := range r {
		if d.IsActive {
			out = append(out, d.Version)
		}
	}
	return out
}

// Latest returns the last active version in registry order, or "" when none is active.
func (r Registry) Latest() Version {
	active := r.Supported()
	if len(active) == 0 {
		return ""
	}
	return active[len(active)-1]
}

// Resolve negotiates the requested version. An empty request resolves to the
// latest active version; anything unsupported is a validation error.
func (r Registry) Resolve(requested string) (Version, error) {
	if requested == "" {
		requested = string(r.Latest())
	}
	if !r.IsSupported(requested) {
		supported := r.Supported()
		names := make([]string, len(supported))
		for i, v := range supported {
			names[i] = string(v)
		}
		return "", domain.Validation("Unsupported API version").
			WithDetails("supported versions: " + strings.Join(names, ", "))
	}
	return Version(requested), nil
}
