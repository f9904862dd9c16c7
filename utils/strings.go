package utils

// AllStrings returns true when the predicate holds for every entry
func AllStrings(strings []string, predicate func(str string) bool) bool {
	for _, v := range strings {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// ContainsString returns true if strings contains str
func ContainsString(strings []string, str string) bool {
	if str != `` {
		for _, v := range strings {
			if v == str {
				return true
			}
		}
	}
	return false
}

// ContainsAllStrings returns true if strings contains all entries in other
func ContainsAllStrings(strings []string, other []string) bool {
	for _, str := range other {
		if !ContainsString(strings, str) {
			return false
		}
	}
	return true
}
