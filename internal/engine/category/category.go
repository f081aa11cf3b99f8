// Package category buckets scanned file paths into fixed semantic labels.
package category

import "strings"

// Category labels. The set is closed: Categorize never returns anything
// outside it.
const (
	SystemDriver   = "System Driver"
	System32Core   = "System32 Core"
	SysWOW64       = "SysWOW64 (32-bit)"
	DotNet         = ".NET Component"
	AntiCheat      = "Anti-Cheat Component"
	WindowsApps    = "WindowsApps"
	UserData       = "User Data Directory"
	ComponentStore = "Component Store"
	OtherSystem    = "Other System File"
)

// rule maps any of its markers to a label. Rules are evaluated top to
// bottom and the first hit wins: categories overlap (a driver path is also
// under system32), so the most specific bucket must sit first. Keep the
// order auditable; do not turn this into a lookup table.
type rule struct {
	markers []string
	label   string
}

var rules = []rule{
	{[]string{`system32\drivers`, `syswow64\drivers`}, SystemDriver},
	{[]string{`system32`}, System32Core},
	{[]string{`syswow64`}, SysWOW64},
	{[]string{`microsoft.net`, `dotnet`}, DotNet},
	{[]string{`anti cheat expert`, `sguard`, `ace`, `eac`}, AntiCheat},
	{[]string{`windows\systemapps`, `windowsapps`}, WindowsApps},
	{[]string{`programdata`, `appdata`}, UserData},
	{[]string{`windows\winsxs`}, ComponentStore},
}

// Categorize assigns a file path to exactly one label. Matching is
// case-insensitive substring containment; paths matching no rule fall
// through to OtherSystem. Total and deterministic.
func Categorize(filePath string) string {
	lower := strings.ToLower(filePath)
	for _, r := range rules {
		for _, m := range r.markers {
			if strings.Contains(lower, m) {
				return r.label
			}
		}
	}
	return OtherSystem
}

// Labels returns every label Categorize can produce, in priority order.
func Labels() []string {
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.label)
	}
	return append(out, OtherSystem)
}
