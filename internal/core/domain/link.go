package domain

import "strings"

// LinkPrefix marks a resolved version that points at another workspace package.
const LinkPrefix = "link:"

// ResolveWorkspaceLink resolves a dependency's resolved version against the
// importer that declares it. It reports false when version is not a workspace
// link. Segments that pop above the workspace root are dropped, so such links
// resolve to ids that match no node.
func ResolveWorkspaceLink(importerPath, version string) (string, bool) {
	rel, ok := strings.CutPrefix(version, LinkPrefix)
	if !ok {
		return "", false
	}

	base := importerPath
	if strings.HasPrefix(rel, "/") {
		base = ""
	}

	return normalizePath(base + "/" + rel), true
}

func normalizePath(p string) string {
	segments := make([]string, 0, strings.Count(p, "/")+1)
	for seg := range strings.SplitSeq(p, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
		}
	}
	return strings.Join(segments, "/")
}
