package diag

import (
	"fmt"
	"time"

	"github.com/google/pprof/profile"
)

// Snapshot builds a pprof profile.Profile describing every region currently
// tracked by this registry: one sample per live region, valued by its byte
// length, labeled with its base address, permission triple, and allocation
// site. Write it with Profile.Write and inspect leaked regions with
// `go tool pprof -traces`.
func Snapshot() *profile.Profile {
	live := Live()

	valType := &profile.ValueType{Type: "bytes", Unit: "bytes"}
	siteFn := map[string]*profile.Function{}
	var functions []*profile.Function
	var locations []*profile.Location
	var samples []*profile.Sample

	nextID := uint64(1)
	funcFor := func(site string) *profile.Function {
		if fn, ok := siteFn[site]; ok {
			return fn
		}
		fn := &profile.Function{ID: nextID, Name: site}
		nextID++
		siteFn[site] = fn
		functions = append(functions, fn)
		return fn
	}

	for _, e := range live {
		fn := funcFor(e.Site)
		loc := &profile.Location{
			ID:   nextID,
			Line: []profile.Line{{Function: fn, Line: 1}},
		}
		nextID++
		locations = append(locations, loc)

		samples = append(samples, &profile.Sample{
			Location: []*profile.Location{loc},
			Value:    []int64{int64(e.Len)},
			Label: map[string][]string{
				"base": {fmt.Sprintf("%#x", e.Base)},
				"perm": {e.Perm.String()},
			},
		})
	}

	return &profile.Profile{
		SampleType:    []*profile.ValueType{valType},
		Sample:        samples,
		Location:      locations,
		Function:      functions,
		TimeNanos:     time.Now().UnixNano(),
		DurationNanos: 0,
	}
}
