package monitoring

import (
	"path/filepath"
	"strings"
)

var layerDirs = []struct {
	dir   string
	layer string
}{
	{dir: "/internal/repositories/", layer: LayerRepository},
	{dir: "/internal/services/", layer: LayerService},
	{dir: "/internal/deliveries/", layer: LayerDelivery},
	{dir: "/internal/common/", layer: LayerClient},
}

// getSegmentName shortens a runtime function name to package.receiver.method.
func getSegmentName(fullFuncName string) string {
	name := fullFuncName
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	parts := strings.Split(name, ".")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.Trim(p, "(*)"); p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, ".")
}

// layerOf maps a source file to the layer of the package holding it.
func layerOf(file string) string {
	file = filepath.ToSlash(file)
	for _, l := range layerDirs {
		if strings.Contains(file, l.dir) {
			return l.layer
		}
	}
	return LayerUnknown
}
