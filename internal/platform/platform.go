package platform

import "runtime"

// Info describes the host the report was produced on.
type Info struct {
	OS     string `json:"os"`
	Arch   string `json:"arch"`
	Family string `json:"family"`
}

// Current reports the compile-time target platform.
func Current() Info {
	return Info{
		OS:     runtime.GOOS,
		Arch:   runtime.GOARCH,
		Family: family(runtime.GOOS),
	}
}

// family collapses the OS name into a coarse family label.
func family(goos string) string {
	switch goos {
	case "windows":
		return "windows"
	case "js", "wasip1":
		return "wasm"
	default:
		return "unix"
	}
}
