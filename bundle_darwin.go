//go:build darwin

package main

import "strings"

// bundleSuffixes lists directory extensions Finder presents as a single
// file. Their contents are not walked.
var bundleSuffixes = map[string]bool{
	"app":           true,
	"appex":         true,
	"bundle":        true,
	"framework":     true,
	"kext":          true,
	"key":           true,
	"mdimporter":    true,
	"numbers":       true,
	"pages":         true,
	"photoslibrary": true,
	"playground":    true,
	"plugin":        true,
	"prefpane":      true,
	"qlgenerator":   true,
	"rtfd":          true,
	"saver":         true,
	"wdgt":          true,
	"xcodeproj":     true,
	"xcworkspace":   true,
	"xpc":           true,
}

// isPackageDir reports whether the directory name denotes a macOS bundle.
func isPackageDir(name string) bool {
	return bundleSuffixes[strings.ToLower(extensionOf(name))]
}
