package debug

import (
	rtdebug "runtime/debug"
)

type BuildInfo struct {
	GoVersion string `json:"go_version"`
	Path      string `json:"path"`
	Revision  string `json:"revision"`
	BuildTime string `json:"build_time"`
}

// ReadBuildInfo build information embedded by the go toolchain, best effort.
func ReadBuildInfo() *BuildInfo {
	info := &BuildInfo{}
	bi, ok := rtdebug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	info.Path = bi.Path
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.time":
			info.BuildTime = s.Value
		}
	}
	return info
}
