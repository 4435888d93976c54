package formatter

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the License file in the repository root.
*/

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/numtree"
	"golang.org/x/term"
)

// Palette assigns colors to the kinds of nodes of a tree.
type Palette struct {
	Inner *color.Color // nodes with at least one child
	Leaf  *color.Color // nodes without children
	Empty *color.Color // markers for empty subtrees
}

// DefaultPalette is used for consoles created without a palette.
var DefaultPalette = Palette{
	Inner: color.New(color.FgBlue, color.Bold),
	Leaf:  color.New(color.FgGreen),
	Empty: color.New(color.FgHiBlack),
}

// Console is a format for outputting trees to a terminal, one node per line,
// indented by depth. Inner nodes, leaves and empty subtrees are colored
// differently.
type Console struct {
	Colorize bool // use colors; defaults to true iff stdout is a terminal
	Indent   int  // indentation per level, in fixed width positions
	palette  Palette
}

// NewConsole creates a console format. If palette is nil, DefaultPalette
// will be used. Missing colors within palette default to DefaultPalette
// as well.
func NewConsole(palette *Palette) *Console {
	c := &Console{
		Colorize: term.IsTerminal(int(os.Stdout.Fd())),
		Indent:   2,
		palette:  DefaultPalette,
	}
	if palette != nil {
		if palette.Inner != nil {
			c.palette.Inner = palette.Inner
		}
		if palette.Leaf != nil {
			c.palette.Leaf = palette.Leaf
		}
		if palette.Empty != nil {
			c.palette.Empty = palette.Empty
		}
	}
	T().P("format", "console").Debugf("colorized output: %v", c.Colorize)
	return c
}

// Print outputs t to stdout.
func (c *Console) Print(t *numtree.Tree) error {
	return c.Fprint(os.Stdout, t)
}

// Fprint outputs t to w.
func (c *Console) Fprint(w io.Writer, t *numtree.Tree) error {
	if t.IsEmpty() {
		return c.text(w, c.palette.Empty, emptyMarker+"\n")
	}
	return c.node(w, t, "", 0)
}

func (c *Console) node(w io.Writer, t *numtree.Tree, side string, depth int) error {
	indent := strings.Repeat(" ", depth*c.Indent)
	if _, err := io.WriteString(w, indent+side); err != nil {
		return err
	}
	v, _ := t.Value()
	isLeaf, _ := t.IsLeaf()
	col := c.palette.Inner
	if isLeaf {
		col = c.palette.Leaf
	}
	if err := c.text(w, col, fmt.Sprintf("%v\n", v)); err != nil {
		return err
	}
	if isLeaf {
		return nil
	}
	left, _ := t.Left()
	right, _ := t.Right()
	if err := c.child(w, left, leftMarker+": ", depth+1); err != nil {
		return err
	}
	return c.child(w, right, rightMarker+": ", depth+1)
}

func (c *Console) child(w io.Writer, sub *numtree.Tree, side string, depth int) error {
	if sub != nil {
		return c.node(w, sub, side, depth)
	}
	indent := strings.Repeat(" ", depth*c.Indent)
	if _, err := io.WriteString(w, indent+side); err != nil {
		return err
	}
	return c.text(w, c.palette.Empty, emptyMarker+"\n")
}

func (c *Console) text(w io.Writer, col *color.Color, s string) error {
	if !c.Colorize || col == nil {
		_, err := io.WriteString(w, s)
		return err
	}
	forced := *col // leave the palette's own color state alone
	forced.EnableColor()
	_, err := forced.Fprint(w, s)
	return err
}
