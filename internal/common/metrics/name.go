package metrics

import "strings"

var nameReplacer = strings.NewReplacer(" ", "_", ".", "_", "-", "_", "=", "_", "/", "_")

// FlattenName turns a service name into a valid metric namespace.
func FlattenName(name string) string {
	return nameReplacer.Replace(name)
}
