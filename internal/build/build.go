// Package build holds build-time information.
package build

// Version is the application version.
// It defaults to "dev" and can be overwritten by linker flags:
//
//	go build -ldflags "-X go.trai.ch/bump/internal/build.Version=1.2.3" ./cmd/bump
var Version = "dev"
