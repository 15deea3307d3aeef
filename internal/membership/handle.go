package membership

import "strings"

// NormalizeHandle reduces an identity to the member handle: everything before
// the first "@". Empty input stays empty (anonymous).
func NormalizeHandle(identity string) string {
	if identity == "" {
		return ""
	}
	return strings.SplitN(identity, "@", 2)[0]
}

// HumanName renders a handle like "jane.doe" as "Jane doe" for email bodies.
func HumanName(handle string) string {
	if handle == "" {
		return ""
	}
	name := strings.ReplaceAll(handle, ".", " ")
	return strings.ToUpper(name[:1]) + name[1:]
}

// Contains checks handle membership in a group listing.
func Contains(handles []string, handle string) bool {
	for _, h := range handles {
		if h == handle {
			return true
		}
	}
	return false
}
