package naming

import "path/filepath"

// FileGroup is a set of input files sharing one stem. They are renamed
// together from a single translated base.
type FileGroup struct {
	Stem  string
	Paths []string
}

// GroupFiles groups paths by the stem of their base name. Groups are ordered
// by the first appearance of each stem and paths keep their input order.
// Unrelated files that happen to share a stem land in the same group.
func GroupFiles(paths []string, maxExtensions int) []FileGroup {
	var groups []FileGroup
	index := make(map[string]int)
	for _, p := range paths {
		stem, _ := SplitExtensions(filepath.Base(p), maxExtensions)
		i, ok := index[stem]
		if !ok {
			i = len(groups)
			index[stem] = i
			groups = append(groups, FileGroup{Stem: stem})
		}
		groups[i].Paths = append(groups[i].Paths, p)
	}
	return groups
}
