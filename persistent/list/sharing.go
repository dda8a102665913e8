package list

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Option is a type to configure the rendering of Sharing.
type Option func(sharingConfig) sharingConfig

type sharingConfig struct {
	root   string
	labels []string
}

// Labels is an option to name the lists passed to Sharing. Lists without a
// label are named by their position, i.e. #0, #1, ….
func Labels(names ...string) Option {
	return func(conf sharingConfig) sharingConfig {
		conf.labels = names
		return conf
	}
}

// Terminal is an option to set the text for the empty list at the root of the
// output of Sharing. The default is "∅".
func Terminal(s string) Option {
	return func(conf sharingConfig) sharingConfig {
		conf.root = s
		return conf
	}
}

func (conf sharingConfig) label(i int) string {
	if i < len(conf.labels) && conf.labels[i] != "" {
		return conf.labels[i]
	}
	return fmt.Sprintf("#%d", i)
}

// Sharing renders the cells of a set of lists as a tree. Lists which share
// cells (e.g., ys = xs.Prepend(x)) share branches of the tree. The root of the
// tree is the empty list, every cell is a branch below its tail, and a leaf
// ‘← name’ marks the first cell of each list:
//
//	xs := list.Of(2, 3)
//	ys := xs.Prepend(1)
//	fmt.Println(list.Sharing([]list.List[int]{xs, ys}, list.Labels("xs", "ys")))
//
// prints
//
//	.
//	└── ∅
//	    └── 3
//	        └── 2
//	            ├── ← xs
//	            └── 1
//	                └── ← ys
//
// This is meant for debugging and testing structural sharing.
func Sharing[A any](lists []List[A], opts ...Option) string {
	conf := sharingConfig{root: "∅"}
	for _, option := range opts {
		conf = option(conf)
	}
	printer := tp.New()
	root := printer.AddBranch(conf.root)
	branches := make(map[*cell[A]]tp.Tree)
	var path []*cell[A]
	for i, l := range lists {
		path = path[:0]
		for c := l.c; c != nil; c = c.tail {
			path = append(path, c)
		}
		parent := root
		for j := len(path) - 1; j >= 0; j-- {
			if b, ok := branches[path[j]]; ok {
				parent = b
				continue
			}
			b := parent.AddBranch(fmt.Sprintf("%v", path[j].head))
			branches[path[j]] = b
			parent = b
		}
		parent.AddNode("← " + conf.label(i))
	}
	tracer().Debugf("sharing: %d lists consist of %d distinct cells", len(lists), len(branches))
	return printer.String()
}
