package projectfile

import (
	"fmt"
	"io"
	"path"

	"github.com/ddddddO/gtree"
	"github.com/specialistvlad/framegen/internal/project"
)

// productsGroup is the label of the synthetic group listing products.
const productsGroup = "Products"

// RenderTree writes the group tree of m as text, with the project name at the
// root and a trailing "Products" group listing the registered products.
func RenderTree(w io.Writer, m project.Model) error {
	root := gtree.NewRoot(m.Name())
	addGroup(root, m.MainGroup())

	if products := m.Products(); len(products) > 0 {
		node := root.Add(productsGroup)
		for _, p := range products {
			node.Add(p.Path)
		}
	}

	if err := gtree.OutputProgrammably(w, root); err != nil {
		return fmt.Errorf("failed to render group tree: %w", err)
	}
	return nil
}

func addGroup(node *gtree.Node, g *project.Group) {
	for _, c := range g.Children {
		addGroup(node.Add(c.Name), c)
	}
	for _, f := range g.Files {
		node.Add(path.Base(f.Path))
	}
}
