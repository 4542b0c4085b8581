package decoder

import "fmt"

// jsonPath is an immutable traversal path through the document. Deriving a
// child path never modifies the parent, so recursive decode steps can hold
// on to their own path value safely.
type jsonPath string

const rootPath jsonPath = "$"

func (p jsonPath) key(name string) jsonPath {
	return jsonPath(string(p) + "." + name)
}

func (p jsonPath) index(i int) jsonPath {
	return jsonPath(fmt.Sprintf("%s[%d]", string(p), i))
}

func (p jsonPath) String() string {
	return string(p)
}
