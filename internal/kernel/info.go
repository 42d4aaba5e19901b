package kernel

// Info describes the accelerated float32 backend, if any was built in.
type Info struct {
	Features    []string
	Accelerated bool
}

// BackendInfo returns the features reported by the float32 backend.
func BackendInfo() Info {
	f, ok := accelInfo()
	return Info{Features: f, Accelerated: ok}
}
