// Package version reports the library version sent in the client-version
// header. Override it at build time with
// -ldflags "-X github.com/dyaksa/courier/version.gitVersion=v1.2.3".
package version

import (
	"fmt"
	"runtime"
	"strings"
)

var (
	gitVersion = "v1.0.0"
	gitCommit  = ""
	buildDate  = "1970-01-01T00:00:00Z"
)

// Info describes the build.
type Info struct {
	GitVersion string `json:"gitVersion"`
	GitCommit  string `json:"gitCommit,omitempty"`
	BuildDate  string `json:"buildDate"`
	GoVersion  string `json:"goVersion"`
	Platform   string `json:"platform"`
}

func (info Info) String() string {
	return info.GitVersion
}

// Version returns the semantic version without the leading "v", the form
// used in the X-Client-Version header.
func Version() string {
	return strings.TrimPrefix(gitVersion, "v")
}

func Get() Info {
	return Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}
