//go:build !amd64 && !arm64

package colmath

func init() {
	initCapabilities()
}
